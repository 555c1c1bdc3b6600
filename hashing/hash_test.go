/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package hashing

import (
	"crypto/sha512"
	"fmt"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/underbar-go/underbar/commonerrors"
	"github.com/underbar-go/underbar/commonerrors/errortest"
)

func TestHasher(t *testing.T) {
	// values given by https://md5calc.com/hash/md5/test
	hasher, err := NewHashingAlgorithm(HashMd5)
	require.NoError(t, err)
	assert.Equal(t, HashMd5, hasher.GetType())
	testCases := []struct {
		Input string
		Hash  string
	}{{
		Input: "test",
		Hash:  "098f6bcd4621d373cade4e832627b4f6",
	}, {
		Input: "CMSIS",
		Hash:  "c61d595888f85f6d30e99ef6cacfcb7d",
	}}
	for _, testCase := range testCases {
		hash, err := hasher.Calculate(strings.NewReader(testCase.Input))
		require.NoError(t, err)
		assert.Equal(t, testCase.Hash, hash)
		assert.Equal(t, testCase.Hash, CalculateMD5Hash(testCase.Input))
	}
	_, err = hasher.Calculate(nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
}

func TestAlgorithms(t *testing.T) {
	text := faker.Paragraph()
	for _, htype := range []string{HashMd5, HashSha1, HashSha256, HashMurmur, HashXXHash} {
		t.Run(htype, func(t *testing.T) {
			first := CalculateHash(text, htype)
			require.NotEmpty(t, first)
			assert.Equal(t, first, CalculateHash(text, htype))
			assert.NotEqual(t, first, CalculateHash(text+".", htype))
			assert.True(t, IsLikelyHexHashString(first))
		})
	}
	_, err := NewHashingAlgorithm(faker.Word())
	errortest.AssertError(t, err, commonerrors.ErrNotFound)
	assert.Empty(t, CalculateHash(text, "unknown"))
}

func TestIsLikelyHexHashString(t *testing.T) {
	tests := []struct {
		input  string
		isHash bool
	}{
		{input: "", isHash: false},
		{input: faker.Word(), isHash: false},
		{input: faker.Sentence(), isHash: false},
		{input: faker.UUIDHyphenated(), isHash: false},
		{input: "v1.0.1", isHash: false},
		{input: CalculateMD5Hash(faker.Paragraph()), isHash: true},
		{input: CalculateHash(faker.Paragraph(), HashSha256), isHash: true},
		{input: "85817ddeed66c3e3805c73dbc7082de2674e349c", isHash: true},
	}
	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("%v_isHash(%v)", i, test.input), func(t *testing.T) {
			require.Equal(t, test.isHash, IsLikelyHexHashString(test.input))
		})
	}
}

func TestBespokeHash(t *testing.T) {
	hashing, err := NewBespokeHashingAlgorithm(sha512.New())
	require.NoError(t, err)
	hash := CalculateStringHash(hashing, faker.Paragraph())
	assert.Len(t, hash, 2*sha512.Size)
	_, err = NewBespokeHashingAlgorithm(nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
	assert.Empty(t, CalculateStringHash(nil, "text"))
}

type point struct {
	X, Y int
}

func TestArgumentsKey(t *testing.T) {
	assert.Equal(t, ArgumentsKey(1, "a", point{1, 2}), ArgumentsKey(1, "a", point{1, 2}))
	assert.NotEqual(t, ArgumentsKey(1, "a"), ArgumentsKey("a", 1))
	assert.NotEqual(t, ArgumentsKey(1), ArgumentsKey(int64(1)))
	assert.NotEqual(t, ArgumentsKey(1), ArgumentsKey("1"))
	assert.NotEqual(t, ArgumentsKey("a,b"), ArgumentsKey("a", "b"))
	assert.NotEqual(t, ArgumentsKey(), ArgumentsKey(nil))
	assert.Equal(t, ArgumentsKey(map[string]int{"a": 1, "b": 2}), ArgumentsKey(map[string]int{"b": 2, "a": 1}))
	assert.NotEqual(t, ArgumentsKey(point{1, 2}), ArgumentsKey(point{2, 1}))
	assert.True(t, IsLikelyHexHashString(ArgumentsKey(faker.Word())))
}

func TestArgumentsKeyPointers(t *testing.T) {
	a := &point{1, 2}
	b := &point{1, 2}
	assert.NotEqual(t, ArgumentsKey(a), ArgumentsKey(b))
	key := ArgumentsKey(a)
	a.X = 5
	assert.Equal(t, key, ArgumentsKey(a))
	var nilPoint *point
	assert.Equal(t, ArgumentsKey(nilPoint), ArgumentsKey((*point)(nil)))
	assert.NotEqual(t, ArgumentsKey(nilPoint), ArgumentsKey(nil))
}
