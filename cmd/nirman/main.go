// Command nirman runs the IS 456 design and BOQ engines from the terminal.
package main

func main() {
	Execute()
}
