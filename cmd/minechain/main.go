// Command minechain is the simulation driver: it instantiates the Network
// fabric, N Nodes and M Clients per the configured ChainMetaData and wires
// them together. This is a thin urfave/cli shell around the
// work/client/network packages.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/abharun/mini-chain/client"
	"github.com/abharun/mini-chain/config"
	"github.com/abharun/mini-chain/log"
	"github.com/abharun/mini-chain/network"
	"github.com/abharun/mini-chain/work"
)

var logger = log.NewModuleLogger(log.CmdMineChain)

var (
	nodeCountFlag   = cli.IntFlag{Name: "node-count", Value: config.Defaults().NodeCount, Usage: "number of simulated nodes"}
	clientCountFlag = cli.IntFlag{Name: "client-count", Value: config.Defaults().ClientCount, Usage: "number of simulated clients"}
	difficultyFlag  = cli.IntFlag{Name: "difficulty", Value: config.Defaults().BlockDifficulty, Usage: "leading hex zeros required in a mined block hash"}
	blockSizeFlag   = cli.IntFlag{Name: "block-size", Value: config.Defaults().BlockSize, Usage: "max transactions per block"}
	metricsFlag     = cli.BoolFlag{Name: "metrics", Usage: "enable updates of the Prometheus mempool-size gauge"}
)

func main() {
	app := cli.NewApp()
	app.Name = "minechain"
	app.Usage = "run a simulated proof-of-work blockchain network"
	app.Flags = []cli.Flag{nodeCountFlag, clientCountFlag, difficultyFlag, blockSizeFlag, metricsFlag}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	cfg := config.Defaults()
	cfg.NodeCount = ctx.Int("node-count")
	cfg.ClientCount = ctx.Int("client-count")
	cfg.BlockDifficulty = ctx.Int("difficulty")
	cfg.BlockSize = ctx.Int("block-size")
	cfg.MetricsEnabled = ctx.Bool("metrics")
	if err := cfg.Validate(); err != nil {
		return err
	}

	net := network.New()

	nodes := make([]*work.Node, cfg.NodeCount)
	inbounds := make([]network.Inbound, cfg.NodeCount)
	for i := range nodes {
		nodes[i] = work.NewNode(cfg, net)
		inbounds[i] = nodes[i].Inbound()
	}
	net.SetPipeline(inbounds)
	net.Run()

	for _, n := range nodes {
		n.Run()
	}

	clients := make([]*client.Client, cfg.ClientCount)
	for i := range clients {
		clients[i] = client.New(cfg, net)
		go clients[i].Run()
	}

	logger.Info("simulation running", "nodes", cfg.NodeCount, "clients", cfg.ClientCount, "difficulty", cfg.BlockDifficulty)
	select {} // run until killed
}
