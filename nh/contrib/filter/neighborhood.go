// Copyright 2025 go-nhbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package filter

import (
	"github.com/ajroetker/go-nhbench/nh"
	"github.com/ajroetker/go-nhbench/nh/contrib/neighborhood"
)

// neighborhood walks windows through one reused neighborhood view per
// worker. Interior centers resolve members from precomputed deltas.
func (w *window[T]) neighborhood() {
	shape := neighborhood.RectangleShape{Span: w.sigma}
	w.pool.ParallelFor(w.out.Len(), func(start, end int) {
		view, err := neighborhood.New(w.in, shape, w.boundary, w.fill)
		if err != nil {
			// sigma and rank were validated before dispatch
			panic(err)
		}
		dst := w.out.Data()
		r := w.op.newReducer()

		c := nh.NewCursor(w.in.Shape(), start, end)
		for c.Next() {
			view.SetPosition(c.Coord())
			r.reset()
			for i := range view.Len() {
				r.add(view.Get(i))
			}
			dst[c.Offset()] = r.result()
		}
	})
}
