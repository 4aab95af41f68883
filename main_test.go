package main

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/healthradar-api/api"
	"github.com/bitmark-inc/healthradar-api/simulate"
	"github.com/bitmark-inc/healthradar-api/store"
)

type closeRecorder struct {
	store.MongoStore
	closed int
}

func (c *closeRecorder) Close() {
	c.closed++
}

func TestShutdownCancelsInitialization(t *testing.T) {
	initialCtx, cancel := context.WithCancel(context.Background())
	app := &lifecycle{cancelInit: cancel}

	app.shutdown(context.Background())
	assert.Equal(t, context.Canceled, initialCtx.Err())
}

func TestShutdownStopsWhatWasStarted(t *testing.T) {
	_, cancel := context.WithCancel(context.Background())
	app := &lifecycle{cancelInit: cancel}
	recorder := &closeRecorder{}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		app.setMongoStore(recorder)
	}()
	go func() {
		defer wg.Done()
		app.setServer(api.NewServer(nil, nil, nil, nil, simulate.DefaultOptions))
	}()
	wg.Wait()

	app.shutdown(context.Background())
	assert.Equal(t, 1, recorder.closed)
}

func TestShutdownRacesInitialization(t *testing.T) {
	_, cancel := context.WithCancel(context.Background())
	app := &lifecycle{cancelInit: cancel}

	done := make(chan struct{})
	go func() {
		defer close(done)
		app.shutdown(context.Background())
	}()

	app.setMongoStore(nil)
	app.setServer(api.NewServer(nil, nil, nil, nil, simulate.DefaultOptions))
	<-done
}
