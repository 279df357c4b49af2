package pricelist

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lodfresh/customer-service/internal/model"
)

// Compile derives the published price list from an item snapshot and a rule
// table. Pure: the same snapshot and rules always yield the same bytes.
func Compile(items []model.Item, rules RuleSet) string {
	entries := collapse(items, rules)

	kgByPrice := map[int][]string{}
	unitByPrice := map[int][]string{}

	for _, e := range entries {
		price, typ := roundAndAdjust(e, rules)
		if typ == model.ItemTypeKg {
			kgByPrice[price] = append(kgByPrice[price], e.name)
		} else {
			unitByPrice[price] = append(unitByPrice[price], e.name)
		}
	}

	var b strings.Builder
	for _, line := range rules.Header {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(rules.KgTitle)
	b.WriteByte('\n')
	writeSection(&b, kgByPrice)
	b.WriteByte('\n')
	b.WriteString(rules.UnitTitle)
	b.WriteByte('\n')
	writeSection(&b, unitByPrice)
	for _, line := range rules.Footer {
		b.WriteByte('\n')
		b.WriteString(line)
	}
	return b.String()
}

// entry is one renamed item family carrying the lowest price seen for it.
type entry struct {
	name  string
	price float64
	typ   model.ItemType
}

// collapse filters to available items, renames them through the rule table
// and keeps only the cheapest price per renamed key (with that price's
// type). Entry order is first appearance in the snapshot, which keeps the
// output deterministic.
func collapse(items []model.Item, rules RuleSet) []*entry {
	byName := map[string]*entry{}
	ordered := []*entry{}

	for _, it := range items {
		if !it.Available {
			continue
		}
		name, ok := rename(it.Name, rules)
		if !ok {
			continue
		}
		if e, seen := byName[name]; seen {
			if it.Price < e.price {
				e.price = it.Price
				e.typ = it.Type
			}
			continue
		}
		e := &entry{name: name, price: it.Price, typ: it.Type}
		byName[name] = e
		ordered = append(ordered, e)
	}
	return ordered
}

func rename(name string, rules RuleSet) (string, bool) {
	lower := strings.ToLower(name)
	for _, rule := range rules.Rename {
		if strings.Contains(lower, strings.ToLower(rule.Match)) {
			if rule.Name == "" {
				return "", false
			}
			return rule.Name, true
		}
	}
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0], true
	}
	return "", false
}

func roundAndAdjust(e *entry, rules RuleSet) (int, model.ItemType) {
	if e.typ == model.ItemTypeUnit {
		if div, ok := rules.UnitToKg[e.name]; ok && div > 0 {
			// Unit economics override: republished per kg.
			return int(math.Floor(e.price / div)), model.ItemTypeKg
		}
		return int(math.Ceil(e.price)), model.ItemTypeUnit
	}

	price := int(math.Floor(e.price))
	if price < rules.MinKgPrice {
		price = rules.MinKgPrice
	}
	if contains(rules.KgMinusOne, e.name) {
		price--
		if price < rules.MinKgPrice {
			price = rules.MinKgPrice
		}
	}
	if contains(rules.KgPlusOne, e.name) {
		price++
	}
	return price, model.ItemTypeKg
}

// writeSection renders one body: ascending price, same-price names joined
// with " / ".
func writeSection(b *strings.Builder, byPrice map[int][]string) {
	prices := make([]int, 0, len(byPrice))
	for p := range byPrice {
		prices = append(prices, p)
	}
	sort.Ints(prices)

	for _, p := range prices {
		fmt.Fprintf(b, "%s - %d\n", strings.Join(byPrice[p], " / "), p)
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
