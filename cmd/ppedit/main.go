// Command ppedit inspects and edits soft PowerPlay tables in registry exports.
package main

func main() {
	execute()
}
