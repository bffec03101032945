/*
Copyright © 2026 CP4I Tools Authors
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"github.com/cp4i-tools/chief/pkg/cli"
)

func main() {
	cli.Execute()
}
