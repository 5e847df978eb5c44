package services

import (
	"fmt"
	"log"

	"resto-pricer/internal/services/feed"
)

// SyncCompetitorFeed refreshes the observed products of every active
// competitor from the external feed. One failing competitor does not stop
// the others; the first error is reported after the sweep.
func SyncCompetitorFeed(competitors *CompetitorService, client *feed.Client, companyID uint) (int, error) {
	if !client.Configured() {
		return 0, fmt.Errorf("no competitor feed configured")
	}

	list, err := competitors.activeCompetitors(companyID)
	if err != nil {
		return 0, err
	}

	synced := 0
	var firstErr error
	for _, competitor := range list {
		observations, err := client.Observations(competitor.Name)
		if err != nil {
			log.Printf("feed sync: %s: %v", competitor.Name, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		for _, obs := range observations {
			err := competitors.UpsertObservation(companyID, competitor.ID, obs.ProductName, obs.Category, obs.Price, obs.ObservedAt)
			if err != nil {
				log.Printf("feed sync: %s/%s: %v", competitor.Name, obs.ProductName, err)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			synced++
		}
	}
	return synced, firstErr
}

// SyncOneCompetitor refreshes a single competitor's observed products.
func SyncOneCompetitor(competitors *CompetitorService, client *feed.Client, companyID, competitorID uint) (int, error) {
	if !client.Configured() {
		return 0, fmt.Errorf("no competitor feed configured")
	}
	competitor, err := competitors.Get(companyID, competitorID)
	if err != nil {
		return 0, err
	}
	observations, err := client.Observations(competitor.Name)
	if err != nil {
		return 0, err
	}
	synced := 0
	for _, obs := range observations {
		err := competitors.UpsertObservation(companyID, competitor.ID, obs.ProductName, obs.Category, obs.Price, obs.ObservedAt)
		if err != nil {
			return synced, err
		}
		synced++
	}
	return synced, nil
}
