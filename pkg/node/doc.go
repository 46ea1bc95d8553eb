/*
Package node defines the expression-tree entities of gptree.

It contains the Node contract and its concrete variants: constant leaves
(Terminal), context accessors (Param), and the n-ary arithmetic operators
(Addition, Multiplication, Division, Subtraction). Trees are finite, acyclic,
single-owner structures: a parent exclusively owns its children, and children
are fully built before the parent wraps them.

This package is kept pure and free of I/O or randomness, following Hexagonal
Architecture principles. Tree construction policy lives in package gen;
rendering lives in the presentation layer.

# Key Entities

  - Node: a single tree element (evaluate, name, children).
  - Context: the ordered external input values a tree is evaluated against.
  - Arity: a two-case descriptor (fixed count or variable, resolved at
    generation time) describing how many children a node kind accepts.
*/
package node
