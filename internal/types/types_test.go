package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoyleJ11/lol-cooldown-tracker/internal/champion"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/engine"
)

func TestNewStateView(t *testing.T) {
	s := engine.NewState()
	_, s, err := engine.Apply(s, engine.Command{
		Type: engine.CmdSelectChampion,
		Champion: &champion.Champion{ID: "Zed", Name: "Zed", Spells: []champion.Spell{
			{Name: "Razor Shuriken", Cooldowns: []float64{6, 5.75, 5.5, 5.25, 5}},
		}},
	})
	require.NoError(t, err)
	_, s, err = engine.Apply(s, engine.Command{Type: engine.CmdStartCooldown, Slot: engine.SlotQ})
	require.NoError(t, err)
	_, s, err = engine.Apply(s, engine.Command{Type: engine.CmdTick, Elapsed: 1500 * time.Millisecond})
	require.NoError(t, err)

	v := NewStateView(s)
	require.Len(t, v.Slots, engine.NumSlots)
	assert.Equal(t, "Zed", v.ChampionName)

	q := v.Slots[0]
	assert.Equal(t, "Q", q.Slot)
	assert.Equal(t, "Razor Shuriken", q.Name)
	assert.Equal(t, 1, q.Level)
	assert.True(t, q.Running)
	assert.InDelta(t, 4.5, q.Remaining, 1e-9)
	assert.InDelta(t, 6, q.Total, 1e-9)
	assert.InDelta(t, 25, q.Progress, 1e-9)
	assert.Equal(t, "4.5s", q.Display)

	flash := v.Slots[4]
	assert.Equal(t, "Summ1", flash.Slot)
	assert.Equal(t, "Flash", flash.Name)
	assert.Equal(t, "F", flash.Key)
	assert.Equal(t, 300.0, flash.Base)
	assert.False(t, flash.Running)
	assert.Empty(t, flash.Display)

	assert.Equal(t, "W", v.Slots[1].Slot)
	assert.Zero(t, v.Slots[1].Base)
}
