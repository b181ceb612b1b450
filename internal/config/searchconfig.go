/*
 * GambitGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

type searchConfiguration struct {
	// UseTT turns the transposition table on or off
	UseTT bool
	// TTSizeMb is the memory budget for the transposition table in MB
	TTSizeMb int
	// UseQuiescence searches forcing moves beyond the nominal depth
	UseQuiescence bool
	// UseSortMoves orders moves before searching them
	UseSortMoves bool
	// DefaultDepth is the search depth used for "go infinite"
	DefaultDepth int
}

func setupSearch() {
	Settings.Search.UseTT = true
	Settings.Search.TTSizeMb = 1_024
	Settings.Search.UseQuiescence = true
	Settings.Search.UseSortMoves = true
	Settings.Search.DefaultDepth = 6
}
