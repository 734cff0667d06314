package test

import (
	"runtime"
	"sync"
)

// CallWatcher records mock invocations with their arguments. Safe for use
// from notification goroutines.
type CallWatcher struct {
	mu            sync.Mutex
	functionCalls map[string][][]interface{}
}

func NewCallWatcher() *CallWatcher {
	return &CallWatcher{functionCalls: make(map[string][][]interface{})}
}

func (w *CallWatcher) GetCall(funcName string) [][]interface{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.functionCalls[funcName]
}

func (w *CallWatcher) GetCallCount(funcName string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.functionCalls[funcName])
}

func (w *CallWatcher) AddCall(args ...interface{}) {
	pc := make([]uintptr, 15)
	n := runtime.Callers(2, pc)
	frames := runtime.CallersFrames(pc[:n])
	frame, _ := frames.Next()
	funcName := frame.Func.Name()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.functionCalls[funcName] = append(w.functionCalls[funcName], args)
}
