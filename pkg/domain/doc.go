/*
Package domain contains the core domain models for the Verdict compiler.

It defines the normalized boolean form (Literals, Clauses, DNF), the
question catalog, and the compiled decision graph. This package is kept
pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - Literal: A signed reference to a question (variable + polarity).
  - Clause: An ordered, AND-connected group of literals within a DNF.
  - Policy: The caller-supplied input (question catalog + logic string).
  - Graph: The compiled decision graph (node arena + labeled edges),
    immutable once built and consumed read-only by serializers.
*/
package domain
