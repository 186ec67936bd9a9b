// Copyright (c) 2026 Andrew Aylett All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Command rblcheck checks IP addresses and domain names against DNS
// blocklists, querying through the host's systemd-resolved service.
//
// Exit status: 0 when no target is listed, 1 when at least one target
// is listed, 2 on any error.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
	if anyListed {
		os.Exit(1)
	}
}
