// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import "candlelight/cli"

func main() {
	cli.Execute()
}
