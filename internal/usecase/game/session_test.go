package game

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"quadratum/internal/bootstrap"
	errs "quadratum/internal/errors"
)

func testConfig() bootstrap.Config {
	return bootstrap.Config{
		ServerPort:       "8080",
		MinScore:         150,
		MinLead:          15,
		Player1Name:      "alice",
		Player2Name:      "bob",
		Player1Kind:      bootstrap.KindHuman,
		Player2Kind:      bootstrap.KindHuman,
		BotStrategy:      "accumulate",
		BotRandomizeTies: false,
	}
}

func TestNewSession_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Player2Kind = "robot"
	_, err := NewSession(cfg, zaptest.NewLogger(t).Sugar())
	assert.ErrorIs(t, err, errs.ErrUnknownKind)

	cfg = testConfig()
	cfg.Player2Kind = bootstrap.KindBot
	cfg.BotStrategy = "greedy"
	_, err = NewSession(cfg, zaptest.NewLogger(t).Sugar())
	assert.ErrorIs(t, err, errs.ErrUnknownStrategy)

	cfg = testConfig()
	cfg.MinLead = 0
	_, err = NewSession(cfg, zaptest.NewLogger(t).Sugar())
	assert.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestSession_Errors(t *testing.T) {
	session, err := NewSession(testConfig(), zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)

	_, _, err = session.Submit(3)
	assert.ErrorIs(t, err, errs.ErrGameNotStarted)

	_, err = session.Start("carol")
	assert.ErrorIs(t, err, errs.ErrUnknownPlayer)

	_, _, err = session.Submit(64)
	assert.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestSession_TwoHumans(t *testing.T) {
	rec := &recorder{}
	session, err := NewSession(testConfig(), zaptest.NewLogger(t).Sugar(), rec)
	require.NoError(t, err)

	state, err := session.Start("bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", state.ActivePlayer)
	assert.Equal(t, [2]string{"alice", "bob"}, state.Players)

	accepted, state, err := session.Submit(10)
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Equal(t, "bob", state.Cells[10])
	assert.Equal(t, "alice", state.ActivePlayer)

	accepted, state, err = session.Submit(10)
	require.NoError(t, err)
	assert.False(t, accepted)
	assert.Equal(t, "alice", state.ActivePlayer)

	assert.Equal(t, state, session.State())
	assert.Equal(t, []string{"cleared", "started bob", "active bob", "placed bob 10", "active alice"}, rec.events)
}

func TestSession_HumanAgainstBot(t *testing.T) {
	cfg := testConfig()
	cfg.Player2Kind = bootstrap.KindBot
	session, err := NewSession(cfg, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)

	state, err := session.Start("bob")
	require.NoError(t, err)
	assert.Equal(t, "alice", state.ActivePlayer, "the bot moved during Start")
	assert.Equal(t, "bob", state.Cells[11])

	accepted, state, err := session.Submit(0)
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Equal(t, "alice", state.ActivePlayer)
	assert.Equal(t, 2, countCells(state.Cells, "bob"))
}

func TestSession_BotsFinishDuringStart(t *testing.T) {
	cfg := testConfig()
	cfg.Player1Kind = bootstrap.KindBot
	cfg.Player2Kind = bootstrap.KindBot
	session, err := NewSession(cfg, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)

	state, err := session.Start("alice")
	require.NoError(t, err)
	assert.Equal(t, "over", state.Phase)
	assert.Equal(t, "alice", state.Winner)
	assert.Equal(t, 197, state.Scores["alice"])
	assert.Equal(t, 148, state.Scores["bob"])

	_, _, err = session.Submit(0)
	assert.ErrorIs(t, err, errs.ErrGameOver)
}

func TestSession_ConcurrentSubmits(t *testing.T) {
	session, err := NewSession(testConfig(), zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)
	_, err = session.Start("alice")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			_, _, _ = session.Submit(index)
		}(i)
	}
	wg.Wait()

	state := session.State()
	assert.Equal(t, 8, countCells(state.Cells, "alice"))
	assert.Equal(t, 8, countCells(state.Cells, "bob"))
}

func countCells(cells [64]string, name string) int {
	n := 0
	for _, c := range cells {
		if c == name {
			n++
		}
	}
	return n
}

func TestBotSeeds(t *testing.T) {
	now := func() time.Time { return time.Unix(0, 1_700_000_000_000_000_000) }

	seeds := botSeeds(0, now)
	assert.NotZero(t, seeds[0])
	assert.NotEqual(t, seeds[0], seeds[1], "bots seeded from the clock flip different coins")
	assert.Equal(t, seeds[0]+1, seeds[1])
	assert.Equal(t, seeds, botSeeds(0, now))

	assert.Equal(t, [2]uint64{42, 43}, botSeeds(42, now))

	epoch := func() time.Time { return time.Unix(0, 0) }
	assert.Equal(t, [2]uint64{1, 2}, botSeeds(0, epoch))
}
