/*
 * ring.go, part of gosugar.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package sugar

import (
	"fmt"
	"sort"

	v3 "github.com/rmera/gosugar/v3"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
)

//ringNode is one atom of a monomer, as a node of the bonded graph.
type ringNode struct {
	at    *Atom
	coord *v3.Matrix
	idx   int //index within the monomer
}

func (n *ringNode) ID() int64 {
	return int64(n.idx)
}

type ringEdge struct {
	from, to *ringNode
}

func (e ringEdge) From() graph.Node {
	return e.from
}

func (e ringEdge) To() graph.Node {
	return e.to
}

//bonds are not directional
func (e ringEdge) ReversedEdge() graph.Edge {
	return ringEdge{from: e.to, to: e.from}
}

//BondGraph presents the atoms of a monomer as an undirected graph,
//with edges between atoms within covalent-bond distance of each other
//and in the same alternate conformation. It implements gonum's
//graph.Undirected.
type BondGraph struct {
	nodes []*ringNode
}

//NewBondGraph builds the bonded graph of a monomer.
func NewBondGraph(mon *Monomer) *BondGraph {
	g := &BondGraph{nodes: make([]*ringNode, 0, mon.Len())}
	for i := 0; i < mon.Len(); i++ {
		c := v3.Zeros(1)
		c.Copy(mon.Coord(i))
		g.nodes = append(g.nodes, &ringNode{at: mon.Atom(i), coord: c, idx: i})
	}
	return g
}

func (g *BondGraph) node(id int64) *ringNode {
	for _, n := range g.nodes {
		if n.ID() == id {
			return n
		}
	}
	return nil
}

func (g *BondGraph) Node(id int64) graph.Node {
	if n := g.node(id); n != nil {
		return n
	}
	return nil
}

func (g *BondGraph) Nodes() graph.Nodes {
	ret := make([]graph.Node, len(g.nodes))
	for i, n := range g.nodes {
		ret[i] = n
	}
	return iterator.NewOrderedNodes(ret)
}

func (g *BondGraph) From(id int64) graph.Nodes {
	n := g.node(id)
	if n == nil {
		return graph.Empty
	}
	ret := make([]graph.Node, 0, 4)
	for _, m := range g.nodes {
		if m == n {
			continue
		}
		if g.linked(n, m) {
			ret = append(ret, m)
		}
	}
	return iterator.NewOrderedNodes(ret)
}

//linked applies the loose distance window used for the ring search.
//Both atoms must be in the same alternate conformation.
func (g *BondGraph) linked(n, m *ringNode) bool {
	return altEq(n.at.AltConf, m.at.AltConf) && inSearchWindow(Distance(n.coord, m.coord))
}

func (g *BondGraph) HasEdgeBetween(xid, yid int64) bool {
	n, m := g.node(xid), g.node(yid)
	return n != nil && m != nil && g.linked(n, m)
}

func (g *BondGraph) Edge(uid, vid int64) graph.Edge {
	return g.EdgeBetween(uid, vid)
}

func (g *BondGraph) EdgeBetween(xid, yid int64) graph.Edge {
	if !g.HasEdgeBetween(xid, yid) {
		return nil
	}
	return ringEdge{from: g.node(xid), to: g.node(yid)}
}

//neighbors returns the indexes (within the graph's node slice) of the
//nodes bonded to the ith node, in ascending order.
func (g *BondGraph) neighbors(i int) []int {
	ret := make([]int, 0, 4)
	for j, m := range g.nodes {
		if j != i && g.linked(g.nodes[i], m) {
			ret = append(ret, j)
		}
	}
	return ret
}

//edgeKey is an undirected edge between two nodes, stored with the
//smaller node first.
type edgeKey [2]int

func newEdgeKey(i, j int) edgeKey {
	if i > j {
		i, j = j, i
	}
	return edgeKey{i, j}
}

//firstCycle runs a depth-first search from the given start node,
//never crossing the same edge twice, and returns the first cycle it
//closes, as indexes into the graph's node slice. It returns nil if the
//component of start has no cycle.
func firstCycle(g *BondGraph, start int) []int {
	type frame struct {
		node int
		nbrs []int
		next int
	}
	visited := make(map[edgeKey]bool)
	onPath := make(map[int]int) //node to depth in the current path
	path := make([]int, 0, len(g.nodes))
	stack := make([]frame, 0, len(g.nodes))

	push := func(n int) {
		onPath[n] = len(path)
		path = append(path, n)
		stack = append(stack, frame{node: n, nbrs: g.neighbors(n)})
	}
	push(start)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.nbrs) {
			delete(onPath, top.node)
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]
			continue
		}
		n := top.nbrs[top.next]
		top.next++
		key := newEdgeKey(top.node, n)
		if visited[key] {
			continue
		}
		visited[key] = true
		if depth, ok := onPath[n]; ok {
			return append([]int{}, path[depth:]...)
		}
		push(n)
	}
	return nil
}

//carbonRank returns the number embedded in an atom name ("C1" gives 1,
//"C6" gives 6). Atoms without a number rank last.
func carbonRank(name string) int {
	num := 0
	found := false
	for i := 0; i < len(name); i++ {
		if name[i] >= '0' && name[i] <= '9' {
			num = num*10 + int(name[i]-'0')
			found = true
		} else if found {
			break
		}
	}
	if !found {
		return 1 << 30
	}
	return num
}

//canonicalRing reorders a detected cycle into the conventional sugar
//ring order: ring oxygens first, preserving their cycle order, then
//the remaining atoms by ascending number in their names. For a
//monosaccharide this is O5, C1, C2... The reordering is idempotent.
func canonicalRing(cycle []*SugarAtom) []*SugarAtom {
	ret := make([]*SugarAtom, 0, len(cycle))
	rest := make([]*SugarAtom, 0, len(cycle))
	for _, at := range cycle {
		if at.Element() == "O" {
			ret = append(ret, at)
		} else {
			rest = append(rest, at)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return carbonRank(rest[i].Name) < carbonRank(rest[j].Name)
	})
	return append(ret, rest...)
}

//FindRing locates the sugar ring of a monomer by a graph search on its
//bonded atoms, and returns its atoms in canonical order (ring oxygen
//first). It returns an error if the monomer contains no cycle.
func FindRing(mon *Monomer) ([]*SugarAtom, error) {
	g := NewBondGraph(mon)
	var cycle []int
	for start := range g.nodes {
		if cycle = firstCycle(g, start); cycle != nil {
			break
		}
	}
	if cycle == nil {
		return nil, CError{fmt.Sprintf("no ring found in monomer %s %d", mon.Name, mon.Molid), []string{"FindRing"}}
	}
	ring := make([]*SugarAtom, 0, len(cycle))
	for _, i := range cycle {
		n := g.nodes[i]
		ring = append(ring, NewSugarAtom(n.at, n.coord))
	}
	return canonicalRing(ring), nil
}

//ringFromTemplate builds the ring of a monomer from the atom names in
//its dictionary entry. When an atom has partial occupancy, the "A"
//alternate conformation is preferred, then "B". It returns the ring,
//the alternate conformation used, and an error if any ring atom is
//missing or ambiguous.
func ringFromTemplate(mon *Monomer, entry *ReferenceEntry) ([]*SugarAtom, byte, error) {
	alt := byte(' ')
	ring := make([]*SugarAtom, 0, len(entry.RingAtoms))
	for _, name := range entry.RingAtoms {
		i := mon.Lookup(name, ' ', LookupAny)
		if i < 0 {
			return nil, alt, CError{fmt.Sprintf("ring atom %s missing from monomer %s %d", name, mon.Name, mon.Molid), []string{"ringFromTemplate"}}
		}
		if mon.Atom(i).Occupancy < 1.0 {
			if j := mon.Lookup(name, 'A', LookupUnique); j >= 0 {
				i, alt = j, 'A'
			} else if j := mon.Lookup(name, 'B', LookupUnique); j >= 0 {
				i, alt = j, 'B'
			} else {
				return nil, alt, CError{fmt.Sprintf("ring atom %s of monomer %s %d has unusable alternate conformations", name, mon.Name, mon.Molid), []string{"ringFromTemplate"}}
			}
		}
		ring = append(ring, NewSugarAtom(mon.Atom(i), mon.Coord(i)))
	}
	return ring, alt, nil
}

//partOfRing reports whether an atom belongs to the given ring, by
//name.
func partOfRing(at *Atom, ring []*SugarAtom) bool {
	for _, r := range ring {
		if r.Name == at.Name {
			return true
		}
	}
	return false
}
