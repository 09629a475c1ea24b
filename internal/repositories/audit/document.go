package audit

import (
	"fmt"
	"time"

	"acquiring/internal/models"

	"github.com/shopspring/decimal"
)

// quoteDocument is the bson shape of a FeeQuote. Money is stored as decimal
// strings so no precision is lost.
type quoteDocument struct {
	ID               string         `bson:"_id"`
	MerchantID       string         `bson:"merchant_id"`
	Source           string         `bson:"source"`
	FeeStructureID   string         `bson:"fee_structure_id,omitempty"`
	Amount           string         `bson:"amount"`
	Currency         string         `bson:"currency"`
	CumulativeVolume string         `bson:"cumulative_volume"`
	AsOf             time.Time      `bson:"as_of"`
	FeeAmount        string         `bson:"fee_amount"`
	Breakdown        []lineDocument `bson:"breakdown"`
	CreatedAt        time.Time      `bson:"created_at"`
}

type lineDocument struct {
	RuleIndex     int    `bson:"rule_index"`
	RuleType      string `bson:"rule_type"`
	ParameterName string `bson:"parameter_name,omitempty"`
	Rate          string `bson:"rate"`
	TierMin       string `bson:"tier_min,omitempty"`
	TierMax       string `bson:"tier_max,omitempty"`
	Contribution  string `bson:"contribution"`
}

func toDocument(q *models.FeeQuote) quoteDocument {
	doc := quoteDocument{
		ID:               q.ID,
		MerchantID:       q.MerchantID,
		Source:           q.Source,
		FeeStructureID:   q.FeeStructureID,
		Amount:           q.Amount.String(),
		Currency:         q.Currency,
		CumulativeVolume: q.CumulativeVolume.String(),
		AsOf:             q.AsOf.UTC(),
		FeeAmount:        q.Result.FeeAmount.StringFixed(2),
		Breakdown:        make([]lineDocument, 0, len(q.Result.Breakdown)),
		CreatedAt:        q.CreatedAt.UTC(),
	}
	for _, app := range q.Result.Breakdown {
		line := lineDocument{
			RuleIndex:     app.RuleIndex,
			RuleType:      string(app.RuleType),
			ParameterName: app.ParameterName,
			Rate:          app.Rate.String(),
			Contribution:  app.Contribution.StringFixed(2),
		}
		if app.Tier != nil {
			if app.Tier.MinVolume != nil {
				line.TierMin = app.Tier.MinVolume.String()
			}
			if !app.Tier.OpenEnded() {
				line.TierMax = app.Tier.MaxVolume.String()
			}
		}
		doc.Breakdown = append(doc.Breakdown, line)
	}
	return doc
}

func (d quoteDocument) toModel() (models.FeeQuote, error) {
	q := models.FeeQuote{
		ID:             d.ID,
		MerchantID:     d.MerchantID,
		Source:         d.Source,
		FeeStructureID: d.FeeStructureID,
		Currency:       d.Currency,
		AsOf:           d.AsOf,
		CreatedAt:      d.CreatedAt,
	}

	var err error
	if q.Amount, err = parse("amount", d.Amount); err != nil {
		return q, err
	}
	if q.CumulativeVolume, err = parse("cumulative_volume", d.CumulativeVolume); err != nil {
		return q, err
	}
	if q.Result.FeeAmount, err = parse("fee_amount", d.FeeAmount); err != nil {
		return q, err
	}
	q.Result.Currency = d.Currency
	q.Result.Breakdown = make([]models.RuleApplication, 0, len(d.Breakdown))

	for _, line := range d.Breakdown {
		app := models.RuleApplication{
			RuleIndex:     line.RuleIndex,
			RuleType:      models.RuleType(line.RuleType),
			ParameterName: line.ParameterName,
		}
		if app.Rate, err = parse("rate", line.Rate); err != nil {
			return q, err
		}
		if app.Contribution, err = parse("contribution", line.Contribution); err != nil {
			return q, err
		}
		if line.TierMin != "" {
			tier := models.VolumeTier{FeeValue: &app.Rate}
			min, err := parse("tier_min", line.TierMin)
			if err != nil {
				return q, err
			}
			tier.MinVolume = &min
			if line.TierMax != "" {
				max, err := parse("tier_max", line.TierMax)
				if err != nil {
					return q, err
				}
				tier.MaxVolume = &max
			}
			app.Tier = &tier
		}
		q.Result.Breakdown = append(q.Result.Breakdown, app)
	}
	return q, nil
}

func parse(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q in fee quote: %w", field, value, err)
	}
	return d, nil
}
