// Package cards provides the card portfolio store: YAML-backed persistence
// of the user's credit cards and payment history, with a built-in sample
// portfolio when no data file exists yet.
package cards

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/hannguyen0712/credit-scorecerer/internal/logging"
	"github.com/hannguyen0712/credit-scorecerer/internal/models"
)

// Store manages loading and saving of card and payment history data.
type Store struct {
	CardsFile   string
	HistoryFile string
	log         logging.Logger
}

// portfolioFile is the on-disk shape of the cards file.
type portfolioFile struct {
	Cards []models.CreditCard `yaml:"cards"`
}

// historyFile is the on-disk shape of the payment history file.
type historyFile struct {
	Payments []models.PaymentRecord `yaml:"payments"`
}

// NewStore creates a store for card-related data.
func NewStore(cardsFile, historyFile string, logger logging.Logger) *Store {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Store{
		CardsFile:   cardsFile,
		HistoryFile: historyFile,
		log:         logger,
	}
}

// findDataFile looks for a data file in standard locations: the path itself,
// ./config, ./database, then ~/.config/credit-scorecerer.
func (s *Store) findDataFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join("database", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "credit-scorecerer", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCards loads the card portfolio from YAML, falling back to the built-in
// sample portfolio when no file exists. A missing file is not an error.
func (s *Store) LoadCards() ([]models.CreditCard, error) {
	filename := s.CardsFile
	if filename == "" {
		filename = "cards.yaml"
	}

	filePath, err := s.findDataFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.WithField("file", filename).Debug("Cards file not found, using sample portfolio")
			return SamplePortfolio(), nil
		}
		return nil, fmt.Errorf("error resolving cards file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading cards file: %w", err)
	}

	var portfolio portfolioFile
	if err := yaml.Unmarshal(data, &portfolio); err != nil {
		return nil, fmt.Errorf("error parsing cards file: %w", err)
	}
	if len(portfolio.Cards) == 0 {
		// Tolerate a bare list without the top-level key.
		var flat []models.CreditCard
		if err := yaml.Unmarshal(data, &flat); err == nil && len(flat) > 0 {
			portfolio.Cards = flat
		}
	}

	s.log.WithFields(
		logging.Field{Key: "count", Value: len(portfolio.Cards)},
		logging.Field{Key: "file", Value: filePath},
	).Debug("Loaded cards")
	return portfolio.Cards, nil
}

// SaveCards writes the card portfolio back to YAML, creating the database
// directory when the file does not exist yet.
func (s *Store) SaveCards(cards []models.CreditCard) error {
	filename := s.CardsFile
	if filename == "" {
		filename = "cards.yaml"
	}

	filePath, err := s.findDataFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error resolving cards file: %w", err)
		}
		if filepath.IsAbs(filename) {
			filePath = filename
		} else {
			filePath = filepath.Join("database", filename)
		}
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(portfolioFile{Cards: cards})
	if err != nil {
		return fmt.Errorf("error marshaling cards: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing cards file: %w", err)
	}

	s.log.WithFields(
		logging.Field{Key: "count", Value: len(cards)},
		logging.Field{Key: "file", Value: filePath},
	).Debug("Saved cards")
	return nil
}

// LoadHistory loads the payment history, falling back to the sample history
// when no file exists.
func (s *Store) LoadHistory() ([]models.PaymentRecord, error) {
	filename := s.HistoryFile
	if filename == "" {
		filename = "history.yaml"
	}

	filePath, err := s.findDataFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.WithField("file", filename).Debug("History file not found, using sample history")
			return SampleHistory(), nil
		}
		return nil, fmt.Errorf("error resolving history file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading history file: %w", err)
	}

	var history historyFile
	if err := yaml.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("error parsing history file: %w", err)
	}
	return history.Payments, nil
}

// SaveHistory writes the payment history back to YAML.
func (s *Store) SaveHistory(payments []models.PaymentRecord) error {
	filename := s.HistoryFile
	if filename == "" {
		filename = "history.yaml"
	}

	filePath, err := s.findDataFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error resolving history file: %w", err)
		}
		if filepath.IsAbs(filename) {
			filePath = filename
		} else {
			filePath = filepath.Join("database", filename)
		}
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(historyFile{Payments: payments})
	if err != nil {
		return fmt.Errorf("error marshaling history: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing history file: %w", err)
	}
	return nil
}

// RecordPayment applies a payment to the named card: the balance drops
// (floored at zero), the last-payment fields are stamped, and both the
// portfolio and the history are persisted. Returns the updated card.
func (s *Store) RecordPayment(cardID string, amount decimal.Decimal) (models.CreditCard, error) {
	if !amount.IsPositive() {
		return models.CreditCard{}, fmt.Errorf("payment amount must be positive, got %s", amount)
	}

	cards, err := s.LoadCards()
	if err != nil {
		return models.CreditCard{}, err
	}

	idx := -1
	for i, c := range cards {
		if c.ID == cardID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.CreditCard{}, fmt.Errorf("credit card not found: %s", cardID)
	}

	today := time.Now().Format("2006-01-02")

	card := cards[idx]
	card.CurrentBalance = card.CurrentBalance.Sub(amount)
	if card.CurrentBalance.IsNegative() {
		card.CurrentBalance = decimal.Zero
	}
	card.LastPaymentDate = today
	card.LastPaymentAmount = amount
	cards[idx] = card

	if err := s.SaveCards(cards); err != nil {
		return models.CreditCard{}, err
	}

	history, err := s.LoadHistory()
	if err != nil {
		return models.CreditCard{}, err
	}
	history = append(history, models.PaymentRecord{
		ID:          fmt.Sprintf("pay-%d", len(history)+1),
		CardID:      card.ID,
		Amount:      amount,
		Date:        today,
		Type:        models.PaymentTypePayment,
		Description: "Payment received",
	})
	if err := s.SaveHistory(history); err != nil {
		return models.CreditCard{}, err
	}

	s.log.WithFields(
		logging.Field{Key: logging.FieldCard, Value: card.Name},
		logging.Field{Key: logging.FieldAmount, Value: amount.StringFixed(2)},
	).Info("Payment recorded")
	return card, nil
}
