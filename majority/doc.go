/*
Package majority implements the MAJORITY coin-weighing puzzle as a plug-in
for package engine.

Given an odd number of coins, each either H (heavier) or L (lighter), the
puzzle is to determine which variety is in the majority using a
minimum-depth sequence of three-way balance weighings. A State tracks, for
each part of the current partition, every H-coin count still consistent
with the weighings performed so far; the puzzle is solved once every
surviving distribution agrees on which variety is in the majority (odd coin
count rules out a tie).

Problem implements engine.Problem[State]; pass it to engine.New to search
for the optimal decision tree.
*/
package majority
