package roids

// ScoreGlyphs returns the glyph ids for a score, most significant digit
// first. Digit d maps to glyph d+1; glyph 0 is blank.
func ScoreGlyphs(score int) []uint8 {
	if score <= 0 {
		return []uint8{1}
	}
	var glyphs []uint8
	for n := score; n > 0; n /= 10 {
		glyphs = append(glyphs, uint8(n%10)+1) //#nosec G115 -- single digit
	}
	for i, j := 0, len(glyphs)-1; i < j; i, j = i+1, j-1 {
		glyphs[i], glyphs[j] = glyphs[j], glyphs[i]
	}
	return glyphs
}

// updateScore redisplays the score when whole seconds of play have passed.
func (g *Game) updateScore() {
	score := g.frame / g.cfg.Timing.FramesPerScore
	if score == g.score {
		return
	}
	g.score = score
	g.display.ShowScore(ScoreGlyphs(score))
}
