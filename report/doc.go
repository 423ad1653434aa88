/*
Package report renders a solved engine.Engine as a human-readable tree dump
or as a Graphviz digraph.

Text produces a hierarchical listing: one top-level Manager block, a root
state summary, then a recursive listing of weighings and their outcome
children, walked with engine.Iterator. Each state is assigned a monotone id
on first appearance and is back-referenced by that id on every later
appearance, so a state reached by more than one path is printed once. A
happy-path mode restricts the walk to a single optimal subtree per state.

DOT and RenderSVG render the same tree as a Graphviz digraph, for a visual
complement to the text dump.
*/
package report
