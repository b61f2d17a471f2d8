package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamBasic(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	section := NewSection()
	require.NoError(section.Bytes().Put(0xAD))
	require.NoError(section.Dwords().Put(0x0A0B))

	assert.Equal(uint(3), section.Counter)
	assert.Equal(3, section.Len())
	assert.Equal("AD0B0A", section.Memdump())
}

func TestStreamOverflow(t *testing.T) {
	assert := assert.New(t)

	section := NewSection()
	err := section.Words().Put(0x1234)
	assert.Error(err)

	err = section.Dwords().Put(0x1234)
	assert.NoError(err)
}

func TestStreamWidth(t *testing.T) {
	assert := assert.New(t)

	section := NewSection()
	_, err := section.GetStream(WORD_SZ)
	assert.NoError(err)
	_, err = section.GetStream(DWORD_SZ)
	assert.NoError(err)
	_, err = section.GetStream(3)
	assert.Error(err)
}

func TestStreamLittleEndian(t *testing.T) {
	assert := assert.New(t)

	section := NewSection()
	assert.NoError(section.Dwords().Put(0x0A0B))
	assert.Equal("0B0A", section.Memdump())
}
