package util

import (
	"reflect"
	"testing"
)

func TestShutdownHooksRunInReverseOrder(t *testing.T) {
	want := []int{3, 2, 1, 0}
	var called []int
	hooks := &ShutdownHooks{}
	for i := 0; i < 4; i++ {
		n := i
		hooks.Register(func() { called = append(called, n) })
	}
	hooks.Run()
	if !reflect.DeepEqual(called, want) {
		t.Errorf("ShutdownHooks: want call order: %v got: %v", want, called)
	}

	hooks.Run()
	if !reflect.DeepEqual(called, want) {
		t.Error("ShutdownHooks: should only run hooks once")
	}
}

func TestShutdownHooksIndependentInstances(t *testing.T) {
	var a, b []string
	h1 := &ShutdownHooks{}
	h2 := &ShutdownHooks{}
	h1.Register(func() { a = append(a, "h1") })
	h2.Register(func() { b = append(b, "h2") })

	h1.Run()
	if len(b) != 0 {
		t.Error("running one instance's hooks must not affect another's")
	}
	h2.Run()
	if len(a) != 1 || len(b) != 1 {
		t.Error("each instance's hooks should run exactly once, independently")
	}
}
