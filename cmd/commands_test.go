package main

import (
	"bytes"
	"carlot/internal/api/graph"
	"carlot/pkg/plate"
	"context"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPlateCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := plateCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--count", "5"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	for _, l := range lines {
		runes := []rune(l)
		require.Len(t, runes, 7)
		require.True(t, strings.ContainsRune(plate.LastLetters, runes[6]))
	}
}

func TestPlateCommand_InvalidCount(t *testing.T) {
	cmd := plateCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-n", "0"})
	require.Error(t, cmd.Execute())
}

func TestSchemaCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := schemaCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	require.Equal(t, graph.SDL(), out.String())
}

func TestListenUntilDone_AddressInUse(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	server := &http.Server{Addr: l.Addr().String(), ReadHeaderTimeout: time.Second}

	done := make(chan error, 1)
	go func() { done <- listenUntilDone(context.Background(), server, time.Second) }()

	select {
	case err := <-done:
		require.ErrorContains(t, err, "could not start webserver")
	case <-time.After(5 * time.Second):
		t.Fatal("serve kept waiting after the listener failed")
	}
}

func TestListenUntilDone_GracefulStop(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	server := &http.Server{Addr: addr, ReadHeaderTimeout: time.Second}

	done := make(chan error, 1)
	go func() { done <- listenUntilDone(ctx, server, time.Second) }()

	require.Eventually(t, func() bool {
		c, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		_ = c.Close()

		return true
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancellation")
	}
}
