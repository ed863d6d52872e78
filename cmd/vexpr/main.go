// Command vexpr prints the fixed eager/lazy/dispatch scenarios.
//
//	vexpr            # all scenarios
//	vexpr lazy       # one scenario
//	vexpr -v         # debug logs on stderr
package main

func main() {
	Execute()
}
