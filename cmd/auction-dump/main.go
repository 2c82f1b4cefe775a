package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/auction-contract/auction/auctionconst"
	rpcauction "github.com/nspcc-dev/auction-contract/rpc/auction"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

var phaseNames = map[int64]string{
	auctionconst.PhaseInactive:      "INACTIVE",
	auctionconst.PhaseCommit:        "COMMIT",
	auctionconst.PhaseReveal:        "REVEAL",
	auctionconst.PhaseFinalized:     "FINALIZED",
	auctionconst.PhaseReserveNotMet: "RESERVE_NOT_MET",
	auctionconst.PhaseCanceled:      "CANCELED",
}

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractHash := flag.String("contract", "", "Script hash of the auction contract (LE hex)")
	auctionID := flag.String("auction", "", "Base58-encoded auction instance ID; all auctions are summarized when omitted")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractHash == "":
		log.Fatal("missing auction contract hash")
	}

	h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(*contractHash, "0x"))
	if err != nil {
		log.Fatal(fmt.Errorf("invalid contract hash: %w", err))
	}

	c, err := rpcclient.New(context.Background(), *neoRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		log.Fatal(fmt.Errorf("RPC client dial: %w", err))
	}

	defer c.Close()

	inv := invoker.New(c, nil)
	reader := rpcauction.NewReader(inv, h)

	if *auctionID == "" {
		err = dumpContract(reader)
	} else {
		err = dumpAuction(inv, reader, *auctionID)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func dumpContract(reader *rpcauction.ContractReader) error {
	version, err := reader.Version()
	if err != nil {
		return fmt.Errorf("get contract version: %w", err)
	}

	counter, err := reader.Counter()
	if err != nil {
		return fmt.Errorf("get instance counter: %w", err)
	}

	fmt.Printf("version:   %s\n", version)
	fmt.Printf("instances: %s\n", counter)
	return nil
}

func dumpAuction(inv *invoker.Invoker, reader *rpcauction.ContractReader, encodedID string) error {
	id, err := base58.Decode(encodedID)
	if err != nil {
		return fmt.Errorf("decode auction ID: %w", err)
	}
	if len(id) != auctionconst.AuctionIDSize {
		return fmt.Errorf("invalid auction ID length %d", len(id))
	}

	a, err := reader.GetAuction(id)
	if err != nil {
		return fmt.Errorf("get auction: %w", err)
	}

	fmt.Printf("auction:         %s\n", encodedID)
	fmt.Printf("owner:           %s\n", a.Owner.StringLE())
	fmt.Printf("payment token:   %s\n", a.PaymentToken.StringLE())
	fmt.Printf("asset contract:  %s\n", a.AssetContract.StringLE())
	fmt.Printf("token ID:        %s\n", hex.EncodeToString(a.TokenID))
	fmt.Printf("commit duration: %s ms\n", a.CommitDuration)
	fmt.Printf("reveal duration: %s ms\n", a.RevealDuration)
	fmt.Printf("reserve price:   %s\n", a.ReservePrice)
	fmt.Printf("phase:           %s\n", phaseNames[a.Phase.Int64()])
	fmt.Printf("commit end:      %s\n", a.CommitEnd)
	fmt.Printf("reveal end:      %s\n", a.RevealEnd)
	if !a.HighestBidder.Equals(util.Uint160{}) {
		fmt.Printf("highest bidder:  %s\n", a.HighestBidder.StringLE())
		fmt.Printf("highest bid:     %s\n", a.HighestBid)
	}

	return dumpCommitments(inv, reader, id)
}

// dumpCommitments prints every unconsumed commitment of the auction. Iterator
// sessions are used when the server supports them, otherwise the server
// expands the iterator itself.
func dumpCommitments(inv *invoker.Invoker, reader *rpcauction.ContractReader, id []byte) error {
	const pageSize = 100

	n := 0
	printItem := func(item stackitem.Item) error {
		b, err := item.TryBytes()
		if err != nil {
			return fmt.Errorf("invalid commitment item: %w", err)
		}
		if n == 0 {
			fmt.Println("commitments:")
		}
		fmt.Printf("  %s\n", hex.EncodeToString(b))
		n++
		return nil
	}

	sessionID, iter, err := reader.Commitments(id)
	if err != nil {
		if !errors.Is(err, unwrap.ErrNoSessionID) {
			return fmt.Errorf("get commitments iterator: %w", err)
		}

		// The server expands iterators instead of opening sessions.
		items, err := reader.CommitmentsExpanded(id, pageSize)
		if err != nil {
			return fmt.Errorf("get expanded commitments: %w", err)
		}
		for _, item := range items {
			if err := printItem(item); err != nil {
				return err
			}
		}
		return nil
	}

	defer func() { _ = inv.TerminateSession(sessionID) }()

	for {
		items, err := inv.TraverseIterator(sessionID, &iter, pageSize)
		if err != nil {
			return fmt.Errorf("traverse commitments iterator: %w", err)
		}
		if len(items) == 0 {
			return nil
		}
		for _, item := range items {
			if err := printItem(item); err != nil {
				return err
			}
		}
	}
}
