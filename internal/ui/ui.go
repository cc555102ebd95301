// Package ui provides the main entry point for the UI.
package ui

import (
	"github.com/palemoky/crazy-eights/internal/ui/model"
)

// NewGameModel creates the model for a game against the computer.
func NewGameModel(opts model.Options) *model.GameModel {
	return model.NewGameModel(opts)
}
