package nativecom

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct{}

type fakeWrapper struct {
	createErr error
	queryErr  error

	created  []any
	queried  []GUID
	released int
}

var ifacePtr unsafe.Pointer = unsafe.Pointer(new(int))

func (f *fakeWrapper) CreateWrapper(instance any) (Handle, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, instance)
	return instance, nil
}

func (f *fakeWrapper) QueryInterface(h Handle, iid GUID) (unsafe.Pointer, error) {
	f.queried = append(f.queried, iid)
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return ifacePtr, nil
}

func (f *fakeWrapper) Release(h Handle) {
	f.released++
}

func TestActivate(t *testing.T) {
	iid := GUID{Data1: 0xE10F1111, Data2: 0x2222, Data3: 0x3333}

	t.Run("nil output slot", func(t *testing.T) {
		RegisterWrapper(&fakeWrapper{})
		assert.Equal(t, EPointer, Activate[widget](nil, &iid, nil))
	})

	t.Run("aggregation is rejected and the slot zeroed first", func(t *testing.T) {
		RegisterWrapper(&fakeWrapper{})
		out := unsafe.Pointer(new(int))
		outer := unsafe.Pointer(new(int))
		assert.Equal(t, ClassENoAggregation, Activate[widget](outer, &iid, &out))
		assert.Nil(t, out)
	})

	t.Run("creates a fresh instance and queries the requested interface", func(t *testing.T) {
		w := &fakeWrapper{}
		RegisterWrapper(w)
		var out unsafe.Pointer

		require.Equal(t, SOK, Activate[widget](nil, &iid, &out))
		assert.Equal(t, ifacePtr, out)
		require.Len(t, w.created, 1)
		assert.IsType(t, &widget{}, w.created[0])
		require.Len(t, w.queried, 1)
		assert.Equal(t, iid, w.queried[0])
		assert.Zero(t, w.released)
	})

	t.Run("each call allocates a new instance", func(t *testing.T) {
		w := &fakeWrapper{}
		RegisterWrapper(w)
		var out unsafe.Pointer
		require.Equal(t, SOK, Activate[widget](nil, &iid, &out))
		require.Equal(t, SOK, Activate[widget](nil, &iid, &out))
		require.Len(t, w.created, 2)
		assert.NotSame(t, w.created[0], w.created[1])
	})

	t.Run("unsupported interface releases the wrapper", func(t *testing.T) {
		w := &fakeWrapper{queryErr: fmt.Errorf("widget: %w", ErrNoInterface)}
		RegisterWrapper(w)
		var out unsafe.Pointer

		assert.Equal(t, ENoInterface, Activate[widget](nil, &iid, &out))
		assert.Nil(t, out)
		assert.Equal(t, 1, w.released)
	})

	t.Run("wrapper creation failure", func(t *testing.T) {
		w := &fakeWrapper{createErr: errors.New("boom")}
		RegisterWrapper(w)
		var out unsafe.Pointer

		assert.Equal(t, EFail, Activate[widget](nil, &iid, &out))
		assert.Zero(t, w.released)
	})

	t.Run("no wrapper registered", func(t *testing.T) {
		activeWrapper.Store(nil)
		var out unsafe.Pointer
		assert.Equal(t, EFail, Activate[widget](nil, &iid, &out))
	})
}

func TestRegisterWrapper(t *testing.T) {
	assert.Panics(t, func() { RegisterWrapper(nil) })
}

func TestLockServer(t *testing.T) {
	serverLocks.Store(0)

	assert.Equal(t, SOK, LockServer(true))
	assert.Equal(t, int64(1), LockCount())
	assert.Equal(t, SOK, LockServer(false))
	assert.Equal(t, int64(0), LockCount())

	t.Run("no lost updates under concurrent callers", func(t *testing.T) {
		serverLocks.Store(0)
		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					LockServer(true)
				}
				for j := 0; j < 100; j++ {
					LockServer(false)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int64(0), LockCount())
	})
}

func TestHRESULT(t *testing.T) {
	assert.True(t, SOK.Succeeded())
	assert.True(t, SFalse.Succeeded())
	assert.True(t, EFail.Failed())
	assert.True(t, ClassENotAvailable.Failed())

	// The fixed "class not available" code is the classic signed value.
	assert.Equal(t, int32(-2147221231), int32(ClassENotAvailable))
	classNotAvailable := int32(ClassENotAvailable)
	assert.Equal(t, uint32(0x80040111), uint32(classNotAvailable))

	assert.Equal(t, "S_OK", SOK.String())
	assert.Equal(t, "CLASS_E_CLASSNOTAVAILABLE", ClassENotAvailable.String())
	assert.Equal(t, "HRESULT(0x12345678)", HRESULT(0x12345678).String())
}
