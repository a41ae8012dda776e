package main

import "asset-uploader/cmd"

func main() {
	cmd.Execute()
}
