// Command navtest is an interactive terminal demo of jnav navigation:
// four pages that push, pop, pass params forward and hand results back.
package main

func main() {
	Execute()
}
