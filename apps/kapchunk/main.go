package main

import (
	kapchunk "github.com/jaym/kapchunk/apps/kapchunk/cmd"
)

func main() {
	kapchunk.Execute()
}
