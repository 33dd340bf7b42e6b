// Package autoplay plays Assemblage games without human input.
//
// A Strategy chooses the next take or placement for the current player and a
// Runner applies those choices through the engine until the layout is empty.
// Two strategies are provided: RandomStrategy picks uniformly among legal
// moves and GreedyStrategy picks the move that most improves the player's
// board right now.
//
// Usage:
//
//	runner := autoplay.NewRunner(gameEngine, &autoplay.GreedyStrategy{}, logger)
//	result, err := runner.Play(ctx, state)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Final.WinnerPlayerID, result.Final.Scores)
package autoplay
