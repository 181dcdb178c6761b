package gameplay

import (
	"github.com/leonelquinteros/gotext"

	engineinput "minesweeper/pkg/engine/input"
	"minesweeper/pkg/engine/world"
	"minesweeper/pkg/game/devtools"
	"minesweeper/pkg/game/difficulty"
	gamemenu "minesweeper/pkg/game/menu"
)

// moveDirections maps movement actions to cursor directions
var moveDirections = map[engineinput.Action]world.Direction{
	engineinput.ActionMoveNorth: world.North,
	engineinput.ActionMoveSouth: world.South,
	engineinput.ActionMoveWest:  world.West,
	engineinput.ActionMoveEast:  world.East,
}

// difficultyActions maps difficulty hotkeys to levels
var difficultyActions = map[engineinput.Action]difficulty.Level{
	engineinput.ActionBeginner:     difficulty.Beginner,
	engineinput.ActionIntermediate: difficulty.Intermediate,
	engineinput.ActionExpert:       difficulty.Expert,
}

// target returns the cell an intent acts on: its own target for pointer
// input, the cursor otherwise.
func (s *Session) target(intent engineinput.Intent) (row, col int) {
	if intent.Targeted {
		s.SetCursor(intent.Row, intent.Col)
		return intent.Row, intent.Col
	}
	return s.Game.CursorRow, s.Game.CursorCol
}

// ProcessIntent handles a high-level input intent from the tiered input system.
func (s *Session) ProcessIntent(intent engineinput.Intent) {
	g := s.Game
	if g.Menu != nil {
		s.processMenuIntent(intent)
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionOpenMenu:
		g.Menu = gamemenu.NewGameMenu(g.Difficulty)
		g.Touch()
		return

	case engineinput.ActionQuit:
		s.quit()
		return

	case engineinput.ActionReveal, engineinput.ActionConfirm:
		row, col := s.target(intent)
		s.RevealAt(row, col)
		return

	case engineinput.ActionFlag:
		row, col := s.target(intent)
		s.FlagAt(row, col)
		return

	case engineinput.ActionRestart:
		s.report(s.Restart())
		return

	case engineinput.ActionReplay:
		s.report(s.Replay())
		return

	case engineinput.ActionScreenshot:
		filename, err := devtools.SaveScreenshotHTML(g, s.dumpDir, s.now())
		if err != nil {
			logMessage(g, "LOST{%s}", gotext.Get("Screenshot failed: %v", err))
			return
		}
		logMessage(g, "%s ACTION{%s}", gotext.Get("Screenshot saved to"), filename)
		return

	case engineinput.ActionDumpBoard:
		path, err := devtools.DumpBoardToFile(g, s.dumpDir)
		if err != nil {
			logMessage(g, "LOST{%s}", gotext.Get("Board dump failed: %v", err))
			return
		}
		logMessage(g, "%s ACTION{%s}", gotext.Get("Board dumped to"), path)
		return
	}

	if dir, ok := moveDirections[intent.Action]; ok {
		s.MoveCursor(dir)
		return
	}
	if level, ok := difficultyActions[intent.Action]; ok {
		s.report(s.ChangeDifficulty(level))
		return
	}
	// Zoom and anything else is renderer business.
}

// processMenuIntent routes input to the open menu
func (s *Session) processMenuIntent(intent engineinput.Intent) {
	g := s.Game
	m := g.Menu

	switch intent.Action {
	case engineinput.ActionMoveNorth:
		m.Prev()
	case engineinput.ActionMoveSouth:
		m.Next()
	case engineinput.ActionConfirm, engineinput.ActionReveal:
		if intent.Targeted {
			return
		}
		s.activateMenuItem()
	case engineinput.ActionOpenMenu, engineinput.ActionQuit:
		g.Menu = nil
	default:
		return
	}
	g.Touch()
}

// activateMenuItem performs the selected menu action and closes the menu
func (s *Session) activateMenuItem() {
	g := s.Game
	item, action := g.Menu.Activate()
	g.Menu = nil

	switch action {
	case gamemenu.ActionNewGame:
		s.report(s.NewGame(item.Level))
	case gamemenu.ActionRestart:
		s.report(s.Restart())
	case gamemenu.ActionQuit:
		s.quit()
	}
}

func (s *Session) quit() {
	s.timer.Stop()
	s.Game.Quit = true
	s.Game.Touch()
	s.entry().Info("quit")
}

// report logs a failed lifecycle operation
func (s *Session) report(err error) {
	if err == nil {
		return
	}
	s.entry().WithError(err).Error("could not start game")
	logMessage(s.Game, "LOST{%s}", err.Error())
}
