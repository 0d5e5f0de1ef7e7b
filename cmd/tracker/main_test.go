package main

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/fittracker/internal/workout"
)

func TestRunDemoPackages(t *testing.T) {
	var out, logs bytes.Buffer
	failed := run(&out, log.New(&logs, "", 0), demoPackages)

	require.Zero(t, failed)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.", lines[0])
	require.Equal(t, "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.", lines[1])
	require.True(t, strings.HasPrefix(lines[2], "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 182.311."))
	require.Empty(t, logs.String())
}

func TestRunContinuesPastBadPackages(t *testing.T) {
	var out, logs bytes.Buffer
	failed := run(&out, log.New(&logs, "", 0), []workout.Package{
		{Code: "XYZ", Params: []float64{1, 2, 3}},
		{Code: "RUN", Params: []float64{15000, 1, 75}},
		{Code: "RUN", Params: []float64{1, 2}},
	})

	require.Equal(t, 2, failed)
	require.Equal(t, 1, strings.Count(out.String(), "\n"))
	require.Contains(t, logs.String(), "unknown_workout_type")
	require.Contains(t, logs.String(), "arity_mismatch")
}

func TestParsePackages(t *testing.T) {
	packages, err := parsePackages([]string{"swm:720,1,80,25,40", "RUN:15000, 1, 75"})
	require.NoError(t, err)
	require.Equal(t, []workout.Package{
		{Code: "SWM", Params: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Params: []float64{15000, 1, 75}},
	}, packages)

	_, err = parsePackages([]string{"RUN"})
	require.Error(t, err)

	_, err = parsePackages([]string{"RUN:1,two,3"})
	require.Error(t, err)
}
