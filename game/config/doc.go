// Package config provides rule set management for the Assemblage card game.
//
// The config package handles:
//   - Loading rule sets from JSON files
//   - Rule set validation against the layout size
//   - Default rule set management
//   - Rule set discovery and listing
//
// Rule Set Format:
//
// Rule sets are stored as JSON files in the configs directory. Each rule set
// defines the layout rules and the cards that fill it:
//
//	{
//	  "name": "Short",
//	  "description": "Half deck on a 2x6 layout",
//	  "rules": {"rows": 2, "cols": 6, "min_players": 2, "max_players": 4, "size_bonus": 50},
//	  "cards": [
//	    {"code": "A", "category": "point", "count": 6, "sides": {"left": 1}}
//	  ],
//	  "side_overrides": {"A": {"top": 1}}
//	}
//
// Points default by category (point 1, line 2, triangle 3, square 4) when a
// card leaves them out. An explicit 0 is kept. The card counts must fill the
// layout exactly.
//
// The standard rule set, the printed 48-card deck, is built in and served
// when the directory holds no standard.json.
//
// Usage:
//
//	manager, err := config.NewManager("configs", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	catalog, rules, err := manager.Build("short")
//	if err != nil {
//		log.Fatal(err)
//	}
//	gameEngine, err := engine.NewEngine(catalog, rules, rng)
package config
