package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"movegraph/internal/bootstrap"
	"movegraph/internal/repository"
)

func TestInitMovesetStoreFile(t *testing.T) {
	cfg := &bootstrap.Config{MovesetStore: bootstrap.StoreFile, MovesetPath: "/srv/moveset.json"}

	store, closeFn, err := initMovesetStore(context.Background(), zap.NewNop().Sugar(), cfg)
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &repository.FileMovesetStore{}, store)
	assert.Equal(t, "/srv/moveset.json", store.Location())
}

func TestInitMovesetStoreRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("moves", `{}`))
	cfg := &bootstrap.Config{MovesetStore: bootstrap.StoreRedis, RedisUrl: mr.Addr(), MovesetRedisKey: "moves"}

	store, closeFn, err := initMovesetStore(context.Background(), zap.NewNop().Sugar(), cfg)
	require.NoError(t, err)
	defer closeFn()

	data, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestImportCommand(t *testing.T) {
	mr := miniredis.RunT(t)
	path := filepath.Join(t.TempDir(), "moveset.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Armbar": {"children": []}}`), 0o644))

	t.Setenv("REDIS_URL", mr.Addr())
	t.Setenv("MOVESET_REDIS_KEY", "moveset")
	t.Setenv("LOG_LEVEL", "error")

	rootCmd.SetArgs([]string{"import", path, "--env", filepath.Join(t.TempDir(), "none.env")})
	require.NoError(t, rootCmd.Execute())

	got, err := mr.Get("moveset")
	require.NoError(t, err)
	assert.Equal(t, `{"Armbar": {"children": []}}`, got)
}

func TestServeDrainsInFlightRequests(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		_, _ = w.Write([]byte("done"))
	})}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	served := make(chan error, 1)
	go func() { served <- serve(ctx, srv, ln) }()

	type result struct {
		body string
		err  error
	}
	responses := make(chan result, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/moveset")
		if err != nil {
			responses <- result{err: err}
			return
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		responses <- result{body: string(body), err: err}
	}()

	<-started
	cancel()

	select {
	case err := <-served:
		t.Fatalf("serve returned while a request was still in flight: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-served)

	res := <-responses
	require.NoError(t, res.err)
	assert.Equal(t, "done", res.body)
}

func TestServeListenerFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ln.Close()

	err = serve(context.Background(), &http.Server{Handler: http.NotFoundHandler()}, ln)
	assert.Error(t, err)
}
