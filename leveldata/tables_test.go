package leveldata

import (
	"fmt"
	"math"
	"testing"

	"github.com/logicossoftware/go-lparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableDedup(t *testing.T) {
	castle := Teleport{Name: "Castle", Cost: 10, Loc: Point{X: 1, Y: 2}}
	spawners := []Spawner{
		{Pos: Point{X: 5}, Type: castle},
		{Pos: Point{X: 6}, Type: castle},
		{Pos: Point{X: 7}, Type: Teleport{Name: "Cave"}},
		{Pos: Point{X: 8, Y: 8}, Type: PlayerSpawn{}},
		{Pos: Point{X: 8, Y: 8}, Type: PlayerSpawn{}},
		{Pos: Point{X: 9}, Type: TextSpawner{Text: "hi"}},
		{Pos: Point{X: 10}, Type: BossBarInfo{BossName: "hi"}},
	}
	cnms, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	require.NoError(t, saveSpawners(cnms, specV1, "Title", spawners))

	ci, err := cnms.I32("SP_CI")
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 0, 1, 0, 0, 0, 0}, ci)

	alloced, err := cnms.U8("TI_ALLOCED")
	require.NoError(t, err)
	require.Len(t, alloced, specV1.NumTeleports)
	assert.Equal(t, []uint8{0, 0, 1}, alloced[:3])
}

func TestTableLayout(t *testing.T) {
	cnms, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	require.NoError(t, saveSpawners(cnms, specV1, `Caves\Part 2`, []Spawner{
		{Pos: Point{X: 1, Y: 2}, Type: PlayerSpawn{}},
		{Pos: Point{X: 3, Y: 4}, Type: Checkpoint{}},
	}))

	xs, err := cnms.F32("PLAYERSPAWNX")
	require.NoError(t, err)
	ys, err := cnms.F32("PLAYERSPAWNY")
	require.NoError(t, err)
	n := specV1.NumSpawns
	require.Len(t, xs, 3*n)
	require.Len(t, ys, 3*n)
	assert.Equal(t, float32(1), xs[0])
	assert.Equal(t, float32(1), xs[n])
	assert.Equal(t, float32(3), xs[2*n])
	assert.Equal(t, float32(4), ys[2*n])
	assert.True(t, math.IsInf(float64(xs[1]), 1))
	assert.True(t, math.IsInf(float64(ys[2*n+1]), 1))

	ci, err := cnms.I32("SP_CI")
	require.NoError(t, err)
	assert.Equal(t, []int32{0, int32(2 * n)}, ci)

	text, err := cnms.U8("ENDINGTEXT")
	require.NoError(t, err)
	require.Len(t, text, specV1.EndingTextLines*specV1.EndingTextLineLen)
	row := text[specV1.TitleEndingTextLine*specV1.EndingTextLineLen:]
	assert.Equal(t, `Caves\Part 2`, string(cString(row)))
}

func TestTextRunsSkipTitleRow(t *testing.T) {
	v := specV1
	b := newTableBuilder(v)
	for i := 0; i < v.TitleEndingTextLine-2; i++ {
		_, _, err := b.addText(fmt.Sprintf("line %d", i))
		require.NoError(t, err)
	}

	// Rows 45 and 46 are free; a three row run would cover the title row.
	_, _, err := b.addText("a\nb\nc")
	assert.ErrorIs(t, err, ErrCapacity)

	start, end, err := b.addText("a\nb")
	require.NoError(t, err)
	assert.Equal(t, int32(v.TitleEndingTextLine-2), start)
	assert.Equal(t, int32(v.TitleEndingTextLine), end)

	_, _, err = b.addText("one more")
	assert.ErrorIs(t, err, ErrCapacity)

	start, _, err = b.addText("line 3")
	require.NoError(t, err)
	assert.Equal(t, int32(3), start)
}

func TestTextRunPadsPastTitleRow(t *testing.T) {
	v := specV1
	v.EndingTextLines = 8
	v.TitleEndingTextLine = 2
	b := newTableBuilder(v)

	_, _, err := b.addText("x")
	require.NoError(t, err)
	start, end, err := b.addText("y\nz")
	require.NoError(t, err)
	assert.Equal(t, int32(3), start)
	assert.Equal(t, int32(5), end)
	assert.Equal(t, []string{"x", "", "", "y", "z"}, b.text)
}

func TestTableCapacity(t *testing.T) {
	v := specV1

	spawns := make([]Spawner, v.NumSpawns+1)
	for i := range spawns {
		spawns[i] = Spawner{Pos: Point{X: float32(i)}, Type: PlayerSpawn{}}
	}
	err := saveSpawners(mustContainer(t), v, "", spawns)
	assert.ErrorIs(t, err, ErrCapacity)

	checkpoints := make([]Spawner, v.NumSpawns+1)
	for i := range checkpoints {
		checkpoints[i] = Spawner{Pos: Point{Y: float32(i)}, Type: Checkpoint{}}
	}
	err = saveSpawners(mustContainer(t), v, "", checkpoints)
	assert.ErrorIs(t, err, ErrCapacity)

	teleports := make([]Spawner, v.NumTeleports+1)
	for i := range teleports {
		teleports[i] = Spawner{Type: Teleport{Cost: int32(i)}}
	}
	err = saveSpawners(mustContainer(t), v, "", teleports)
	assert.ErrorIs(t, err, ErrCapacity)

	// Repeats of one row never run out.
	same := make([]Spawner, v.NumTeleports+1)
	for i := range same {
		same[i] = Spawner{Type: Teleport{Name: "Hub"}}
	}
	assert.NoError(t, saveSpawners(mustContainer(t), v, "", same))
}

func TestSaveSpawnersLeavesContainerOnError(t *testing.T) {
	cnms := mustContainer(t)
	err := saveSpawners(cnms, specV1, "", []Spawner{{Type: Lua{Type: 200}}})
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, 0, cnms.Len())

	err = saveSpawners(cnms, specV1, "a title much longer than thirty-two bytes", nil)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, 0, cnms.Len())
}

func TestLoadTablesInvalidUTF8(t *testing.T) {
	cnms := mustContainer(t)
	text := make([]uint8, specV1.EndingTextLines*specV1.EndingTextLineLen)
	copy(text, []byte{'o', 'k', 0xff})
	cnms.SetU8("ENDINGTEXT", text)

	_, err := loadTables(cnms, specV1, &decodeConfig{})
	assert.ErrorIs(t, err, ErrCorrupted)

	tb, err := loadTables(cnms, specV1, &decodeConfig{lenient: true})
	require.NoError(t, err)
	assert.Equal(t, "ok?", tb.text[0])
}

func mustContainer(t *testing.T) *lparse.Container {
	t.Helper()
	c, err := lparse.New(lparse.VersionV1)
	require.NoError(t, err)
	return c
}
