/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"testing"

	"github.com/suparena/filestore/datastore"
	"github.com/suparena/filestore/datastore/mock"
	"github.com/suparena/filestore/errors"
)

var _ datastore.DocumentStore = (*mock.DataStore)(nil)

func TestMockDataStore(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		mockStore := mock.New()

		// Nothing stored yet
		_, err := mockStore.Load(ctx)
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}

		err = mockStore.Store(ctx, []byte(`{"a":1}`))
		if err != nil {
			t.Fatalf("Store failed: %v", err)
		}

		data, err := mockStore.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if string(data) != `{"a":1}` {
			t.Fatalf("Loaded document mismatch: %s", data)
		}

		// Mutating the returned slice must not touch the stored copy
		data[0] = 'x'
		again, _ := mockStore.Load(ctx)
		if string(again) != `{"a":1}` {
			t.Fatalf("Stored document was aliased: %s", again)
		}

		if mockStore.Stores() != 1 || mockStore.Loads() != 3 {
			t.Fatalf("Unexpected counters: stores=%d loads=%d", mockStore.Stores(), mockStore.Loads())
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		storeErr := errors.NewIOError("write", "memory", context.DeadlineExceeded)
		mockStore := mock.New().WithStoreError(storeErr)

		err := mockStore.Store(ctx, []byte(`{}`))
		if err != storeErr {
			t.Fatalf("Expected store error, got: %v", err)
		}
		if _, ok := mockStore.GetData(); ok {
			t.Fatal("Failed store must not leave a document behind")
		}

		loadErr := errors.NewIOError("read", "memory", context.Canceled)
		mockStore.WithLoadError(loadErr)
		if _, err := mockStore.Load(ctx); err != loadErr {
			t.Fatalf("Expected load error, got: %v", err)
		}
	})

	t.Run("HelperMethods", func(t *testing.T) {
		mockStore := mock.New().WithName("fixture")
		if mockStore.Location() != "fixture" {
			t.Fatalf("Unexpected location %q", mockStore.Location())
		}

		mockStore.SetData([]byte(`{}`))
		data, ok := mockStore.GetData()
		if !ok || string(data) != `{}` {
			t.Fatalf("GetData = %q, %v", data, ok)
		}

		mockStore.Clear()
		if _, ok := mockStore.GetData(); ok {
			t.Fatal("Expected no document after Clear")
		}
	})
}
