// Package rpc exposes the contract over go-ethereum's JSON-RPC server in the
// "nfc" namespace.
package rpc

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	gethrpc "github.com/ethereum/go-ethereum/rpc"

	"nfc_contract/contract"
	"nfc_contract/sdk"
)

// Namespace is the method prefix, e.g. nfc_mint.
const Namespace = "nfc"

// TxArgs identifies the caller of a mutating method and the value it attaches.
// There is no signature check, the node trusts From.
type TxArgs struct {
	From  sdk.Address  `json:"from"`
	Value *hexutil.Big `json:"value,omitempty"`
}

func (a TxArgs) env() sdk.Env {
	return sdk.NewEnv(a.From, (*big.Int)(a.Value))
}

// CreateProjectArgs is the wire form of contract.CreateProjectArgs.
type CreateProjectArgs struct {
	Author           sdk.Address  `json:"author"`
	ExternalURL      string       `json:"externalUrl"`
	ContentID        string       `json:"contentId"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	License          string       `json:"license"`
	Price            *hexutil.Big `json:"price"`
	MaxSupply        uint64       `json:"maxSupply"`
	InitialContentID string       `json:"initialContentId,omitempty"`
}

// Service is the nfc namespace.
type Service struct {
	c *contract.Contract
}

func NewService(c *contract.Contract) *Service {
	return &Service{c: c}
}

// ----- Mutations -----

func (s *Service) CreateProject(ctx context.Context, tx TxArgs, args CreateProjectArgs) (uint64, error) {
	return s.c.CreateProject(ctx, tx.env(), contract.CreateProjectArgs{
		Author:           args.Author,
		ExternalURL:      args.ExternalURL,
		ContentID:        args.ContentID,
		Name:             args.Name,
		Description:      args.Description,
		License:          args.License,
		Price:            (*big.Int)(args.Price),
		MaxSupply:        args.MaxSupply,
		InitialContentID: args.InitialContentID,
	})
}

func (s *Service) Mint(ctx context.Context, tx TxArgs, recipient sdk.Address, projectID uint64, contentID string) (uint64, error) {
	return s.c.Mint(ctx, tx.env(), recipient, projectID, contentID)
}

func (s *Service) PauseProject(ctx context.Context, tx TxArgs, projectID uint64) error {
	return s.c.PauseProject(ctx, tx.env(), projectID)
}

func (s *Service) UnpauseProject(ctx context.Context, tx TxArgs, projectID uint64) error {
	return s.c.UnpauseProject(ctx, tx.env(), projectID)
}

func (s *Service) Pause(ctx context.Context, tx TxArgs) error {
	return s.c.Pause(ctx, tx.env())
}

func (s *Service) Unpause(ctx context.Context, tx TxArgs) error {
	return s.c.Unpause(ctx, tx.env())
}

func (s *Service) SetTreasury(ctx context.Context, tx TxArgs, treasury sdk.Address) error {
	return s.c.SetTreasury(ctx, tx.env(), treasury)
}

func (s *Service) SetFeeInBp(ctx context.Context, tx TxArgs, feeInBp uint64) error {
	return s.c.SetFeeInBp(ctx, tx.env(), feeInBp)
}

func (s *Service) TransferAdmin(ctx context.Context, tx TxArgs, admin sdk.Address) error {
	return s.c.TransferAdmin(ctx, tx.env(), admin)
}

// Call runs an action with a pipe-delimited payload, see contract.Call.
func (s *Service) Call(ctx context.Context, tx TxArgs, action string, payload string) (string, error) {
	return s.c.Call(ctx, tx.env(), action, payload)
}

// ----- Reads -----

func (s *Service) GetProject(ctx context.Context, id uint64) (*contract.Project, error) {
	return s.c.GetProject(ctx, id)
}

func (s *Service) ProjectCount(ctx context.Context) (uint64, error) {
	return s.c.ProjectCount(ctx)
}

func (s *Service) ProjectsByAuthor(ctx context.Context, author sdk.Address) ([]uint64, error) {
	return s.c.ProjectsByAuthor(ctx, author)
}

func (s *Service) ProjectURI(ctx context.Context, id uint64) (string, error) {
	return s.c.ProjectURI(ctx, id)
}

func (s *Service) GetToken(ctx context.Context, id uint64) (*contract.Token, error) {
	return s.c.GetToken(ctx, id)
}

func (s *Service) TokenURI(ctx context.Context, id uint64) (string, error) {
	return s.c.TokenURI(ctx, id)
}

func (s *Service) OwnerOf(ctx context.Context, id uint64) (sdk.Address, error) {
	return s.c.OwnerOf(ctx, id)
}

func (s *Service) BalanceOf(ctx context.Context, owner sdk.Address) (uint64, error) {
	return s.c.BalanceOf(ctx, owner)
}

func (s *Service) TokensOfOwner(ctx context.Context, owner sdk.Address) ([]uint64, error) {
	return s.c.TokensOfOwner(ctx, owner)
}

func (s *Service) TotalSupply(ctx context.Context) (uint64, error) {
	return s.c.TotalSupply(ctx)
}

func (s *Service) Config(ctx context.Context) (*contract.GlobalConfig, error) {
	return s.c.Config(ctx)
}

func (s *Service) QuoteMint(ctx context.Context, projectID uint64) (*contract.Quote, error) {
	return s.c.QuoteMint(ctx, projectID)
}

// GetBalance reads the ledger, not the contract.
func (s *Service) GetBalance(addr sdk.Address) *hexutil.Big {
	return (*hexutil.Big)(s.c.Ledger().BalanceOf(addr))
}

// GetLogs returns event records starting at index from.
func (s *Service) GetLogs(from uint64) []contract.Record {
	return s.c.Events().Records(from)
}

// ----- Subscriptions -----

// Events streams every record appended after the subscription was created.
func (s *Service) Events(ctx context.Context) (*gethrpc.Subscription, error) {
	notifier, supported := gethrpc.NotifierFromContext(ctx)
	if !supported {
		return &gethrpc.Subscription{}, gethrpc.ErrNotificationsUnsupported
	}
	sub := notifier.CreateSubscription()

	ch := make(chan contract.Record, 64)
	feedSub := s.c.Events().Subscribe(ch)
	go func() {
		defer feedSub.Unsubscribe()
		for {
			select {
			case rec := <-ch:
				if err := notifier.Notify(sub.ID, rec); err != nil {
					return
				}
			case <-sub.Err():
				return
			}
		}
	}()
	return sub, nil
}
