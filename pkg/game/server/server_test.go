package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialPlay(t *testing.T, query string) (*websocket.Conn, func()) {
	t.Helper()

	p := NewPlayServer()
	ts := httptest.NewServer(p.HandlePlay())

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + query
	con, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	return con, func() {
		con.Close()
		ts.Close()
	}
}

func TestPlayInitialFrame(t *testing.T) {
	con, done := dialPlay(t, "?maze=pocket")
	defer done()

	var f Frame
	require.NoError(t, con.ReadJSON(&f))

	assert.Equal(t, "pocket", f.Maze)
	assert.NotEmpty(t, f.Session)
	assert.Equal(t, 0, f.Moves)
	assert.Equal(t, 1, f.Visited)
	assert.Contains(t, f.Snapshot, "R")
}

func TestPlayStepAndReset(t *testing.T) {
	con, done := dialPlay(t, "?maze=pocket")
	defer done()

	var f Frame
	require.NoError(t, con.ReadJSON(&f))

	require.NoError(t, con.WriteJSON(Command{Move: "east"}))
	require.NoError(t, con.ReadJSON(&f))
	assert.Equal(t, "moved", f.Outcome)
	assert.Equal(t, 1, f.Moves)

	require.NoError(t, con.WriteJSON(Command{Reset: true}))
	require.NoError(t, con.ReadJSON(&f))
	assert.Equal(t, 0, f.Moves)
	assert.False(t, f.Finished)
}

func TestPlayRejectsUnknownDirection(t *testing.T) {
	con, done := dialPlay(t, "")
	defer done()

	var f Frame
	require.NoError(t, con.ReadJSON(&f))

	require.NoError(t, con.WriteJSON(Command{Move: "up-and-over"}))
	require.NoError(t, con.ReadJSON(&f))
	assert.Contains(t, f.Error, "unknown direction")
	assert.Equal(t, 0, f.Moves)
}

func TestPlayUnknownMaze(t *testing.T) {
	p := NewPlayServer()
	ts := httptest.NewServer(p.HandlePlay())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "?maze=nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMazeList(t *testing.T) {
	p := NewPlayServer()
	ts := httptest.NewServer(p.HandleMazeList())
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	var names []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&names))
	assert.Contains(t, names, "classic")
	assert.Contains(t, names, "pocket")
}
