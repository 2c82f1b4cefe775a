package common

var (
	escrowPrefix = []byte{0x01}
	refundPrefix = []byte{0x02}
	payoutPrefix = []byte{0x03}
)

// EscrowTransferDetails marks a bid transfer that pulls the revealed amount
// from a bidder into auction escrow.
func EscrowTransferDetails(auctionID []byte) []byte {
	return append(escrowPrefix, auctionID...)
}

// RefundTransferDetails marks a transfer that returns escrowed funds to a
// displaced bidder.
func RefundTransferDetails(auctionID []byte) []byte {
	return append(refundPrefix, auctionID...)
}

// PayoutTransferDetails marks a transfer of the winning bid from auction
// escrow to the auction owner at settlement.
func PayoutTransferDetails(auctionID []byte) []byte {
	return append(payoutPrefix, auctionID...)
}
