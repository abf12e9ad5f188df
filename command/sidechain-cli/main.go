// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// command line inspector for sidechain records and deposit addresses
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/sjmackenzie/sidechains/depositaddress"
	"github.com/sjmackenzie/sidechains/sidechainrecord"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "sidechain-cli"
	app.Usage = "inspect sidechain records and deposit addresses"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a checksummed deposit address",
			ArgsUsage: "DESTINATION",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "sidechain, s",
					Value: 0,
					Usage: " sidechain `ID` in the range 0..255",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "verify",
			Usage:     "validate a deposit address and print its parts",
			ArgsUsage: "ADDRESS",
			Action:    runVerify,
		},
		{
			Name:      "decode",
			Usage:     "decode a hex data carrier script into a record",
			ArgsUsage: "HEX",
			Action:    runDecode,
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

// create the diagnostic log channel
//
// console output only appears with the verbose flag
func setupLogger(c *cli.Context) *logger.L {
	logging := logger.Configuration{
		Directory: os.TempDir(),
		File:      "sidechain-cli.log",
		Size:      1048576,
		Count:     10,
		Console:   c.GlobalBool("verbose"),
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}
	_ = logger.Initialise(logging)
	return logger.New("cli")
}

func runGenerate(c *cli.Context) error {
	log := setupLogger(c)
	defer logger.Finalise()

	destination := c.Args().First()
	if "" == destination {
		return fmt.Errorf("missing DESTINATION argument")
	}

	sidechainId := c.Uint("sidechain")
	if sidechainId > 255 {
		return fmt.Errorf("sidechain id out of range: %d", sidechainId)
	}

	address := depositaddress.Generate(uint8(sidechainId), destination)
	log.Infof("generated address: %q", address)

	fmt.Fprintf(c.App.Writer, "%s\n", address)
	return nil
}

func runVerify(c *cli.Context) error {
	log := setupLogger(c)
	defer logger.Finalise()

	address := c.Args().First()
	if "" == address {
		return fmt.Errorf("missing ADDRESS argument")
	}

	destination, sidechainId, err := depositaddress.Parse(address)
	if nil != err {
		log.Errorf("address %q rejected: %s", address, err)
		return err
	}
	log.Infof("address %q accepted", address)

	fmt.Fprintf(c.App.Writer, "sidechain: %d\n", sidechainId)
	fmt.Fprintf(c.App.Writer, "destination: %s\n", destination)
	return nil
}

func runDecode(c *cli.Context) error {
	log := setupLogger(c)
	defer logger.Finalise()

	argument := c.Args().First()
	if "" == argument {
		return fmt.Errorf("missing HEX argument")
	}

	script, err := hex.DecodeString(argument)
	if nil != err {
		return err
	}

	record, err := sidechainrecord.ParseScript(script)
	if nil != err {
		log.Errorf("script rejected: %s", err)
		return err
	}

	name, _ := sidechainrecord.RecordName(record)
	log.Infof("decoded a %s record", name)

	fmt.Fprintf(c.App.Writer, "record: %s\n", name)
	fmt.Fprintf(c.App.Writer, "hash: %s\n", sidechainrecord.Hash(record))
	fmt.Fprintf(c.App.Writer, "%s", record)
	return nil
}
