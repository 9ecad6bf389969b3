package nativecom

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestUnimplementedClassFactory(t *testing.T) {
	var f UnimplementedClassFactory
	var out unsafe.Pointer

	assert.Equal(t, ENotImpl, f.CreateInstance(nil, &GUID{}, &out))
	assert.Equal(t, ENotImpl, f.LockServer(true))
}
