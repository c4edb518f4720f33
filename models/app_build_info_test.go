// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppBuildInfo_KeepsValues(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "2026-10-18", "abc123")

	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "2026-10-18", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}

func TestNewAppBuildInfo_EmptyBecomesNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, NotAvailable, info.BuildVersion())
	assert.Equal(t, NotAvailable, info.BuildDate())
	assert.Equal(t, NotAvailable, info.BuildCommit())
}

func TestAppBuildInfo_Print(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewAppBuildInfo("v1", "", "deadbeef").Print(&buf))

	assert.Equal(t, "Build version: v1\nBuild date: N/A\nBuild commit: deadbeef\n", buf.String())
}
