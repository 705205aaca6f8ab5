package screener

import "errors"

var ErrSecurityNotFound = errors.New("security not found")

type Service interface {
	// Screen returns the catalog entries passing the filter, in catalog order.
	Screen(filter Filter) []Security
	// Lookup finds a catalog entry by ticker.
	Lookup(ticker string) (Security, error)
}

type ServiceImpl struct {
	catalog []Security
}

func NewService(catalog []Security) *ServiceImpl {
	return &ServiceImpl{catalog: catalog}
}

func (s *ServiceImpl) Screen(filter Filter) []Security {
	result := make([]Security, 0, len(s.catalog))
	for _, sec := range s.catalog {
		if filter.Matches(sec) {
			result = append(result, sec)
		}
	}
	return result
}

func (s *ServiceImpl) Lookup(ticker string) (Security, error) {
	for _, sec := range s.catalog {
		if sec.Ticker == ticker {
			return sec, nil
		}
	}
	return Security{}, ErrSecurityNotFound
}
