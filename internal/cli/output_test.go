package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/leanwork/lean/internal/domain"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "Paint the fence", truncateTitle("  Paint   the\tfence "))

	long := strings.Repeat("x", maxTitleWidth+10)
	got := truncateTitle(long)
	assert.Equal(t, maxTitleWidth, runewidth.StringWidth(got))
	assert.True(t, strings.HasSuffix(got, "…"))

	wide := strings.Repeat("漢", maxTitleWidth)
	assert.LessOrEqual(t, runewidth.StringWidth(truncateTitle(wide)), maxTitleWidth)
}

func TestPrintTaskList_StatusColumn(t *testing.T) {
	ts := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

	paused := newTask("Paused")
	paused.StartedAt = &ts
	paused.PausedAt = []time.Time{ts}
	paused.Done = 0.29

	unstarted := newTask("Unstarted")

	var buf bytes.Buffer
	printTaskList(&buf, []*domain.StoredTask{
		storedTask("029S_paused", paused),
		storedTask("000U_unstarted", unstarted),
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "paused "))
	assert.Contains(t, lines[1], " 29%")
	assert.True(t, strings.HasPrefix(lines[2], "unstarted "))
	assert.Contains(t, lines[2], "  0%")
	assert.NotContains(t, buf.String(), "\x1b[", "no escape codes when not writing to a terminal")
}

func TestPrintTask_PlainWhenNotTerminal(t *testing.T) {
	task := newTask("Water plants")
	task.Occurrence = domain.Periodic(domain.Weekly(domain.Weekday(time.Monday)))

	var buf bytes.Buffer
	err := printTask(&buf, storedTask("000U_water_plants", task))

	require.NoError(t, err)
	assert.Equal(t, `# 000U_water_plants
title: Water plants
description: ""
occurrence:
  type: Periodic
  recurrence:
    weekly: Mon
effort: []
done: 0
created_at: 2024-01-15T10:00:00Z
`, buf.String())
}
