/*
Package verdict compiles boolean approval policies into decision graphs.

A policy pairs a catalog of yes/no questions with a boolean expression
over their ids. Verdict normalizes the expression into Disjunctive Normal
Form and compiles the clauses into a compact decision graph: every
internal node asks one question, every path ends in Approve or Reject,
and chains that agree on a prefix of question/answer pairs share nodes.

The compiled graph is immutable and can be rendered as a Mermaid
flowchart or as a structured JSON document.
*/
package verdict
