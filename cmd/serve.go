/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dhnt/devserve/internal/server"
)

func configFromFlags(cmd *cobra.Command) (*server.ServerConfig, error) {
	var err error
	var c server.ServerConfig

	c.Host, err = cmd.Flags().GetString("host")
	if err != nil {
		return nil, err
	}
	c.Port, err = cmd.Flags().GetInt("port")
	if err != nil {
		return nil, err
	}
	c.Root, err = cmd.Flags().GetString("dir")
	if err != nil {
		return nil, err
	}
	c.MaxConns, err = cmd.Flags().GetInt("max-conns")
	if err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func serve(ctx context.Context, cmd *cobra.Command, cfg *server.ServerConfig) error {
	log.Printf("config: %v", cfg)

	s, err := server.New(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cmd, cfg)
}
