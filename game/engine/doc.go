// Package engine provides the rules engine for the Assemblage card game.
//
// The engine package implements the game mechanics including:
//   - Card catalog and deck construction
//   - The shared layout and taking cards from its row ends
//   - Edge matching of rotated cards into ensembles
//   - Completeness detection and end-of-game scoring
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState is an immutable value: ApplyMove
// returns a new state and leaves its input untouched. Catalog is the frozen
// card table built through CatalogBuilder.
//
// Usage:
//
//	gameEngine, err := engine.NewEngine(engine.StandardCatalog(), engine.DefaultRules(), rng)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	state, err := gameEngine.CreateInitialState([]engine.Player{{ID: "ann"}, {ID: "bob", JoinOrder: 1}})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Take the leftmost card of the first row, then start a new ensemble with it
//	state, err = gameEngine.ApplyMove(state, engine.TakeMove(0, engine.SideLeft), "ann")
//	state, err = gameEngine.ApplyMove(state, engine.PlaceNewMove(engine.Rotation0, 0, 0), "ann")
//
// Game Rules:
//
// Players take turns taking a card from either open end of a layout row and
// placing it on their own board, either as a new ensemble or next to an
// existing one. Touching edges must carry the same number of connection
// points and at least one touching edge must carry some. When the layout is
// empty every ensemble scores its points, positive if complete and negative
// otherwise, and the players with the largest complete ensemble split a bonus.
//
// The engine performs no I/O and holds no locks. Callers serialize moves per game.
package engine
