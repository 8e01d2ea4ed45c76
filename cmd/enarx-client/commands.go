package main

import (
	"context"
	"fmt"
	"io"

	"github.com/enarx/keepbroker/api/clients"
	"github.com/enarx/keepbroker/interfaces"
	"github.com/google/uuid"
)

func printKeep(w io.Writer, k interfaces.Keep) {
	fmt.Fprintf(w, "%s\t%s\t%s\n", k.UUID, k.Contract.UUID, k.Contract.Backend)
}

func listContracts(ctx context.Context, p clients.ManagerProvider, w io.Writer) error {
	contracts, err := p.Contracts(ctx)
	if err != nil {
		return err
	}
	for _, c := range contracts {
		fmt.Fprintln(w, c.String())
	}
	return nil
}

func showContract(ctx context.Context, p clients.ManagerProvider, w io.Writer, id uuid.UUID) error {
	c, err := p.Contract(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, c.String())
	return nil
}

func claimKeep(ctx context.Context, p clients.ManagerProvider, w io.Writer, contractID uuid.UUID) error {
	keep, location, err := p.Claim(ctx, contractID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\t%s\n", keep.UUID, location)
	return nil
}

func listKeeps(ctx context.Context, p clients.ManagerProvider, w io.Writer) error {
	keeps, err := p.Keeps(ctx)
	if err != nil {
		return err
	}
	for _, k := range keeps {
		printKeep(w, k)
	}
	return nil
}

func showKeep(ctx context.Context, p clients.ManagerProvider, w io.Writer, id uuid.UUID) error {
	k, err := p.Keep(ctx, id)
	if err != nil {
		return err
	}
	printKeep(w, k)
	return nil
}

func deleteKeep(ctx context.Context, p clients.ManagerProvider, w io.Writer, id uuid.UUID) error {
	if err := p.DeleteKeep(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(w, "deleted %s\n", id)
	return nil
}
