// Copyright 2025 go-cmath Authors
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

package kernel

import "sort"

// TableSize is the number of nodes in each lookup table.
const TableSize = 101

// Table is a sampled function: Samples[k] = f(Nodes[k]), with Nodes strictly
// increasing.
type Table struct {
	Nodes   [TableSize]float64
	Samples [TableSize]float64
}

// sineSamples holds sin(k·τ/100) for k = 0..100.
var sineSamples = [TableSize]float64{
	0, 0.06279052, 0.125333234, 0.187381315, 0.248689887, 0.309016994, 0.368124553, 0.425779292, 0.481753674, 0.535826795,
	0.587785252, 0.63742399, 0.684547106, 0.728968627, 0.770513243, 0.809016994, 0.844327926, 0.87630668, 0.904827052, 0.929776486,
	0.951056516, 0.968583161, 0.982287251, 0.992114701, 0.998026728, 1, 0.998026728, 0.992114701, 0.982287251, 0.968583161,
	0.951056516, 0.929776486, 0.904827052, 0.87630668, 0.844327926, 0.809016994, 0.770513243, 0.728968627, 0.684547106, 0.63742399,
	0.587785252, 0.535826795, 0.481753674, 0.425779292, 0.368124553, 0.309016994, 0.248689887, 0.187381315, 0.125333234, 0.06279052,
	0, -0.06279052, -0.125333234, -0.187381315, -0.248689887, -0.309016994, -0.368124553, -0.425779292, -0.481753674, -0.535826795,
	-0.587785252, -0.63742399, -0.684547106, -0.728968627, -0.770513243, -0.809016994, -0.844327926, -0.87630668, -0.904827052, -0.929776486,
	-0.951056516, -0.968583161, -0.982287251, -0.992114701, -0.998026728, -1, -0.998026728, -0.992114701, -0.982287251, -0.968583161,
	-0.951056516, -0.929776486, -0.904827052, -0.87630668, -0.844327926, -0.809016994, -0.770513243, -0.728968627, -0.684547106, -0.63742399,
	-0.587785252, -0.535826795, -0.481753674, -0.425779292, -0.368124553, -0.309016994, -0.248689887, -0.187381315, -0.125333234, -0.06279052,
	0,
}

// tangentSamples holds tan(-π/2 + k·π/100) for k = 0..100, clamped to
// ±TangentSentinel at the poles.
var tangentSamples = [TableSize]float64{
	-TangentSentinel, -31.82051595, -15.89454484, -10.57889499, -7.915815088, -6.313751515, -5.242183581, -4.473742829, -3.894742855, -3.442022577,
	-3.077683537, -2.777606854, -2.525711689, -2.310863654, -2.125108173, -1.962610506, -1.818993247, -1.690907656, -1.57574786, -1.471455316,
	-1.37638192, -1.289192232, -1.20879235, -1.134277349, -1.06489184, -1, -0.939062506, -0.881618592, -0.827271946, -0.775679511,
	-0.726542528, -0.679599298, -0.634619298, -0.591398351, -0.549754652, -0.509525449, -0.470564281, -0.432738642, -0.395928009, -0.360022153,
	-0.324919696, -0.290526857, -0.25675636, -0.223526483, -0.190760202, -0.15838444, -0.126329378, -0.094527831, -0.062914667, -0.031426266,
	0, 0.031426266, 0.062914667, 0.094527831, 0.126329378, 0.15838444, 0.190760202, 0.223526483, 0.25675636, 0.290526857,
	0.324919696, 0.360022153, 0.395928009, 0.432738642, 0.470564281, 0.509525449, 0.549754652, 0.591398351, 0.634619298, 0.679599298,
	0.726542528, 0.775679511, 0.827271946, 0.881618592, 0.939062506, 1, 1.06489184, 1.134277349, 1.20879235, 1.289192232,
	1.37638192, 1.471455316, 1.57574786, 1.690907656, 1.818993247, 1.962610506, 2.125108173, 2.310863654, 2.525711689, 2.777606854,
	3.077683537, 3.442022577, 3.894742855, 4.473742829, 5.242183581, 6.313751515, 7.915815088, 10.57889499, 15.89454484, 31.82051595,
	TangentSentinel,
}

// The tables are built once at package initialization and never written
// afterwards.
var (
	sineTable    = newTable(0, Tau, &sineSamples)
	tangentTable = newTable(-HalfPi, HalfPi, &tangentSamples)
)

// newTable spaces TableSize nodes evenly over [lo, hi] as lo·(1-f) + hi·f.
// The end nodes are exact, and so is the midpoint of a symmetric range, so
// reduction boundaries and zero land on a node.
func newTable(lo, hi float64, samples *[TableSize]float64) *Table {
	t := &Table{Samples: *samples}
	for k := range TableSize {
		f := float64(k) / (TableSize - 1)
		t.Nodes[k] = lo*(1-f) + hi*f
	}
	return t
}

// SineTable returns a copy of the sine lookup table.
func SineTable() Table {
	return *sineTable
}

// TangentTable returns a copy of the tangent lookup table.
func TangentTable() Table {
	return *tangentTable
}

// lookup interpolates t at x. The caller must have reduced x into
// [Nodes[0], Nodes[TableSize-1]].
func (t *Table) lookup(x float64) float64 {
	idx := sort.SearchFloat64s(t.Nodes[:], x)
	if idx >= TableSize {
		idx = TableSize - 1
	}
	x1 := t.Nodes[idx]
	if idx == 0 || x1-x <= SnapTolerance {
		return t.Samples[idx]
	}

	x0 := t.Nodes[idx-1]
	y0, y1 := t.Samples[idx-1], t.Samples[idx]
	if x1 == x0 {
		return y1
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}
