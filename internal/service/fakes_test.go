package service

import (
	"context"
	"sync"
)

type fakeClient struct {
	mu          sync.Mutex
	requests    []GenerationRequest
	credentials []string
	response    string
	err         error
	// gate, when set, blocks Generate until it is closed.
	gate chan struct{}
}

func (f *fakeClient) Generate(_ context.Context, credential string, req GenerationRequest) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.credentials = append(f.credentials, credential)
	gate, resp, err := f.gate, f.response, f.err
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return resp, err
}

func (f *fakeClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type fakeCredentials struct {
	mu          sync.Mutex
	keys        map[uint]string
	invalidated []uint
}

func newFakeCredentials(keys map[uint]string) *fakeCredentials {
	if keys == nil {
		keys = make(map[uint]string)
	}
	return &fakeCredentials{keys: keys}
}

func (f *fakeCredentials) Save(userID uint, apiKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys[userID] = apiKey
	return nil
}

func (f *fakeCredentials) Resolve(userID uint) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.keys[userID], nil
}

func (f *fakeCredentials) IsConfigured(userID uint) (bool, error) {
	key, err := f.Resolve(userID)
	return key != "", err
}

func (f *fakeCredentials) Invalidate(userID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.keys, userID)
	f.invalidated = append(f.invalidated, userID)
	return nil
}

type recordingObserver struct {
	mu   sync.Mutex
	runs []Run
}

func (o *recordingObserver) RunChanged(r Run) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.runs = append(o.runs, r)
}
