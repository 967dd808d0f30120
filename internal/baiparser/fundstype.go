package baiparser

import (
	"strconv"

	"fjacquet/bai-csv/internal/models"
)

// parseFundsType decodes a funds-availability descriptor starting at the
// cursor. The leading qualifier character selects the variant and each
// variant expects a different tail-field arity. An empty qualifier means the
// descriptor is absent.
func parseFundsType(c *fieldCursor) (models.FundsType, error) {
	qualifier := c.optional()
	switch qualifier {
	case "":
		return nil, nil
	case "Z":
		return models.FundsUnknown{}, nil
	case "0":
		return models.FundsImmediate{}, nil
	case "1":
		return models.FundsOneDay{}, nil
	case "2":
		return models.FundsTwoOrMoreDays{}, nil
	case "V":
		dateField, err := c.mandatory("value date")
		if err != nil {
			return nil, err
		}
		timeField := c.optional()
		avail, err := models.ParseDateOrTime(dateField, timeField)
		if err != nil {
			return nil, c.wrapf(dateField, err, "invalid value date")
		}
		return models.FundsValueDated{Avail: avail}, nil
	case "S":
		immediate, err := c.optionalSigned("immediate availability")
		if err != nil {
			return nil, err
		}
		oneDay, err := c.optionalSigned("one-day availability")
		if err != nil {
			return nil, err
		}
		moreThanOneDay, err := c.optionalSigned("two-or-more-day availability")
		if err != nil {
			return nil, err
		}
		return models.FundsDistributedCategories{
			Immediate:      immediate,
			OneDay:         oneDay,
			MoreThanOneDay: moreThanOneDay,
		}, nil
	case "D":
		// the distribution table swallows the remainder of the record;
		// continuation records may extend it
		dists, err := parseDistributions(c)
		if err != nil {
			return nil, err
		}
		return &models.FundsDistributedTable{Distributions: dists}, nil
	default:
		return nil, c.errf(qualifier, "unrecognized funds-type qualifier '%s'", qualifier)
	}
}

// parseDistributions reads {days, amount} pairs until the record ends.
func parseDistributions(c *fieldCursor) ([]models.Distribution, error) {
	var dists []models.Distribution
	for {
		daysField, ok := c.next()
		if !ok {
			return dists, nil
		}
		days, err := strconv.ParseUint(daysField, 10, 32)
		if err != nil {
			return nil, c.wrapf(daysField, err, "days-to-availability is not numeric")
		}
		amountField, ok := c.next()
		if !ok {
			return nil, c.errf("", "distribution for %d days is missing its amount", days)
		}
		amount, err := strconv.ParseInt(amountField, 10, 64)
		if err != nil {
			return nil, c.wrapf(amountField, err, "distribution amount is not a signed integer")
		}
		dists = append(dists, models.Distribution{Days: uint32(days), Amount: amount})
	}
}
