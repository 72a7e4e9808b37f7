/*
Package mathengine evaluates arithmetic expressions over plain numbers and
over physically dimensioned quantities, e.g. "(1m + 2m) to feet", "23C to F",
or "2^10".

Grammar

	expr       --> primary ( binop expr )* ;
	primary    --> NUMBER
	             | NUMBER UNIT_NAME
	             | UNIT_NAME
	             | "(" expr ")"
	             | "-" primary ;
	binop      --> "+" | "-" | "*" | "/" | "^" | TO ;
	TO         --> case-insensitive "to" ;
	NUMBER     --> digits ( "." digits )? ;
	UNIT_NAME  --> alphabetic run, case-insensitive ;

Precedence, higher binds tighter: "+" and "-" at 1, "*" and "/" at 2, "^" at
3, "to" at 5. "^" is the only right-associative operator. The grammar places
no dimensional restriction on operands; dimensional legality is enforced
during evaluation, which checks unit-family compatibility at every
arithmetic step and never silently approximates.

The pipeline is stateless and performs no I/O, so each call to
EvaluateExpression is independent and safe to make from concurrent callers.
*/
package mathengine
