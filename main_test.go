package main

import (
	"context"
	"testing"
	"time"

	"restohours/config"
	"restohours/services/restaurant"
	"restohours/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func withConfig(t *testing.T, cfg config.Config) {
	t.Helper()
	saved := config.AppConfig
	config.AppConfig = cfg
	utils.Logger = zap.NewNop()
	t.Cleanup(func() { config.AppConfig = saved })
}

func TestLoadDatasetFromBundledFile(t *testing.T) {
	withConfig(t, config.Config{DatasetSource: "file", DatasetPath: "data/rest_hours.json", ParseMode: "strict"})

	dataset, err := loadDataset(context.Background())
	require.NoError(t, err)
	require.Len(t, dataset, 12)

	saturday1am := time.Date(2023, 2, 11, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"The Willard Rooftop Lounge", "Char Grill", "Seoul 116"}, restaurant.FindOpen(dataset, saturday1am))
}

func TestLoadDatasetErrors(t *testing.T) {
	withConfig(t, config.Config{DatasetSource: "file", DatasetPath: "data/missing.json"})
	_, err := loadDataset(context.Background())
	assert.Error(t, err)

	withConfig(t, config.Config{DatasetSource: "file", DatasetPath: "data/rest_hours.json", ParseMode: "lenient"})
	_, err = loadDataset(context.Background())
	assert.Error(t, err)
}
