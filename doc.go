// Package formula compiles and evaluates arithmetic formulas in one
// variable.
//
// A formula is text like "2x^2 - sin(x)/3": numeric literals, the
// variable x, the operators + - * / ^, parentheses, and a fixed set of
// named functions. Writing a number directly against x or against a
// parenthesized expression multiplies, so "3x" and "3(x+1)" need no
// explicit *.
//
// Compile checks a formula against the grammar once and produces a
// Program, a flat postfix instruction sequence that can be evaluated
// cheaply at many values of x. Parser wraps the same machinery behind
// the pass/fail interface a plotting UI or REPL wants: Parse reports
// whether the formula is valid, Evaluate computes the last valid one.
package formula
