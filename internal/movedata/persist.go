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

package movedata

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/frankkopp/GambitGo/internal/util"
)

// SaveFile persists the tables to the given path. The output is
// byte-stable for identical tables: field order follows the struct
// definitions and the encoder is deterministic.
func (md *AllMoveData) SaveFile(path string) error {
	data, err := json.MarshalIndent(md, "", " ")
	if err != nil {
		return fmt.Errorf("encoding move data: %w", err)
	}
	if err := ioutil.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing move data file: %w", err)
	}
	return nil
}

// LoadFile reads persisted tables from the given path. The path is
// resolved relative to the working directory and the executable.
func LoadFile(path string) (*AllMoveData, error) {
	resolved, err := util.ResolveFile(path)
	if err != nil {
		return nil, err
	}
	data, err := ioutil.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("reading move data file: %w", err)
	}
	md := &AllMoveData{}
	if err := json.Unmarshal(data, md); err != nil {
		return nil, fmt.Errorf("decoding move data file %s: %w", resolved, err)
	}
	return md, nil
}
