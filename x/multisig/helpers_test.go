package multisig

import (
	"context"
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
	"github.com/zkelabs/quorum"
	"github.com/zkelabs/quorum/quorumtest"
	"github.com/zkelabs/quorum/store"
	"github.com/zkelabs/quorum/x/call"
	"github.com/zkelabs/quorum/x/nft"
	"github.com/zkelabs/quorum/x/token"
)

// fixture mirrors a deployment with four signers: signer0, signer1, signer2
// and wallet, plus a few users that are not signers.
type fixture struct {
	db     quorum.CacheableKVStore
	auth   *quorumtest.CtxAuth
	ms     *Multisig
	ledger *token.Ledger
	bank   *token.Bank
	nfts   *nft.Registry
	router *call.Router
	now    time.Time
	events []Event

	signer0, signer1, signer2, wallet quorum.Condition
	user0, user1, user2, user3        quorum.Condition

	eth, zke   quorum.Address
	nft0, nft1 quorum.Address
}

func newFixture(t testing.TB, minAuthorizations uint64, opts ...Option) *fixture {
	t.Helper()

	f := &fixture{
		db:      store.MemStore(),
		auth:    &quorumtest.CtxAuth{Key: "auth"},
		ledger:  token.NewLedger(),
		nfts:    nft.NewRegistry(),
		now:     time.Unix(1600000000, 0),
		signer0: quorumtest.NewCondition(),
		signer1: quorumtest.NewCondition(),
		signer2: quorumtest.NewCondition(),
		wallet:  quorumtest.NewCondition(),
		user0:   quorumtest.NewCondition(),
		user1:   quorumtest.NewCondition(),
		user2:   quorumtest.NewCondition(),
		user3:   quorumtest.NewCondition(),
		eth:     quorumtest.RandomAddr(),
		zke:     quorumtest.RandomAddr(),
		nft0:    quorumtest.RandomAddr(),
		nft1:    quorumtest.RandomAddr(),
	}
	f.bank = token.NewBank(f.ledger)
	f.router = call.NewRouter(f.bank)

	signers := []quorum.Address{
		f.signer0.Address(),
		f.signer1.Address(),
		f.signer2.Address(),
		f.wallet.Address(),
	}
	registry := NewSignerRegistry()
	require.NoError(t, registry.Seed(f.db, signers, minAuthorizations))

	invoker := NewInvoker(Condition([]byte("main")).Address(), f.ledger, f.nfts, f.bank, f.router)
	opts = append(opts, WithListener(func(e Event) { f.events = append(f.events, e) }))
	f.ms = New(f.db, f.auth, NewLifecycle(registry, invoker), opts...)
	return f
}

// as returns a context authenticated as given condition.
func (f *fixture) as(c quorum.Condition) quorum.Context {
	ctx := quorum.WithBlockTime(context.Background(), f.now)
	return f.auth.SetConditions(ctx, c)
}

func (f *fixture) self() quorum.Address {
	return f.ms.Address()
}

func (f *fixture) balance(t testing.TB, token, owner quorum.Address) *uint256.Int {
	t.Helper()
	b, err := f.ledger.BalanceOf(f.db, token, owner)
	require.NoError(t, err)
	return b
}

func (f *fixture) owner(t testing.TB, collection quorum.Address, id *uint256.Int) quorum.Address {
	t.Helper()
	o, err := f.nfts.OwnerOf(f.db, collection, id)
	require.NoError(t, err)
	return o
}

func (f *fixture) lastEvent(t testing.TB) Event {
	t.Helper()
	require.NotEmpty(t, f.events)
	return f.events[len(f.events)-1]
}

// approveAll signs a pending action with signer0 and signer2, enough for a
// threshold of two.
func (f *fixture) approveAll(t testing.TB, action Action, nonce uint64) {
	t.Helper()
	_, err := f.ms.Sign(f.as(f.signer0), action, nonce)
	require.NoError(t, err)
	_, err = f.ms.Sign(f.as(f.signer2), action, nonce)
	require.NoError(t, err)
}

func amountOf(n uint64) *uint256.Int {
	return uint256.NewInt(n)
}
