package catalog

import "strings"

var tokenIcons = map[string]string{
	"USDC":    "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ethereum/assets/0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48/logo.png",
	"USDT":    "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ethereum/assets/0xdAC17F958D2ee523a2206206994597C13D831ec7/logo.png",
	"DAI":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ethereum/assets/0x6B175474E89094C44Da98b954EesdfdsfdC495271d0F/logo.png",
	"ETH":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ethereum/info/logo.png",
	"WETH":    "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ethereum/assets/0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2/logo.png",
	"BTC":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/bitcoin/info/logo.png",
	"WBTC":    "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ethereum/assets/0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599/logo.png",
	"SUI":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/sui/info/logo.png",
	"SOL":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/solana/info/logo.png",
	"NEAR":    "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/near/info/logo.png",
	"ARB":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/arbitrum/info/logo.png",
	"OP":      "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/optimism/info/logo.png",
	"POL":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/polygon/info/logo.png",
	"AVAX":    "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/avalanchec/info/logo.png",
	"BNB":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/binance/info/logo.png",
	"BASE":    "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/base/info/logo.png",
	"ADA":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/cardano/info/logo.png",
	"XRP":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ripple/info/logo.png",
	"DOGE":    "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/doge/info/logo.png",
	"LTC":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/litecoin/info/logo.png",
	"BCH":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/bitcoincash/info/logo.png",
	"TON":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ton/info/logo.png",
	"TRX":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/tron/info/logo.png",
	"XLM":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/stellar/info/logo.png",
	"APT":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/aptos/info/logo.png",
	"AAVE":    "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ethereum/assets/0x7Fc66500c84A76Ad7e9c93437BFc5Ac33E2DDaE9/logo.png",
	"UNI":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ethereum/assets/0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984/logo.png",
	"LINK":    "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ethereum/assets/0x514910771AF9Ca656af840dff83E8264EcF986CA/logo.png",
	"SHIB":    "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ethereum/assets/0x95aD61b0a150d79219dCF64E1E6Cc01f0B64C4cE/logo.png",
	"PEPE":    "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ethereum/assets/0x6982508145454Ce325dDbE47a25d4ec3d2311933/logo.png",
	"STRK":    "https://assets.coingecko.com/coins/images/26433/standard/starknet.png",
	"BERA":    "https://assets.coingecko.com/coins/images/34286/standard/bera.png",
	"GNO":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ethereum/assets/0x6810e776880C02933D47DB1b9fc05908e5386b96/logo.png",
	"MON":     "https://assets.coingecko.com/coins/images/35887/standard/monad.png",
	"ZEC":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/zcash/info/logo.png",
	"TRUMP":   "https://assets.coingecko.com/coins/images/53746/standard/trump.jpg",
	"WIF":     "https://assets.coingecko.com/coins/images/33566/standard/dogwifhat.jpg",
	"BRETT":   "https://assets.coingecko.com/coins/images/35529/standard/brett.png",
	"TURBO":   "https://assets.coingecko.com/coins/images/30116/standard/turbo.png",
	"DEFAULT": "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ethereum/info/logo.png",
}

var chainIcons = map[ChainID]string{
	"sui":      "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/sui/info/logo.png",
	"eth":      "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ethereum/info/logo.png",
	"arb":      "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/arbitrum/info/logo.png",
	"base":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/base/info/logo.png",
	"op":       "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/optimism/info/logo.png",
	"sol":      "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/solana/info/logo.png",
	"btc":      "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/bitcoin/info/logo.png",
	"near":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/near/info/logo.png",
	"pol":      "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/polygon/info/logo.png",
	"avax":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/avalanchec/info/logo.png",
	"bsc":      "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/binance/info/logo.png",
	"ton":      "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ton/info/logo.png",
	"tron":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/tron/info/logo.png",
	"stellar":  "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/stellar/info/logo.png",
	"cardano":  "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/cardano/info/logo.png",
	"aptos":    "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/aptos/info/logo.png",
	"gnosis":   "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/xdai/info/logo.png",
	"starknet": "https://assets.coingecko.com/coins/images/26433/standard/starknet.png",
	"bera":     "https://assets.coingecko.com/coins/images/34286/standard/bera.png",
	"monad":    "https://assets.coingecko.com/coins/images/35887/standard/monad.png",
	"doge":     "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/doge/info/logo.png",
	"ltc":      "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/litecoin/info/logo.png",
	"bch":      "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/bitcoincash/info/logo.png",
	"xrp":      "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/ripple/info/logo.png",
	"zec":      "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/zcash/info/logo.png",
}

func newToken(chain ChainID, symbol, assetID string, decimals int, contract string) Token {
	name := string(chain) + strings.NewReplacer("$", "", " ", "").Replace(symbol)
	icon, ok := tokenIcons[symbol]
	if !ok {
		icon = tokenIcons["DEFAULT"]
	}
	return Token{
		Name:            name,
		Symbol:          symbol,
		AssetID:         assetID,
		Chain:           chain,
		Decimals:        decimals,
		Icon:            icon,
		ChainIcon:       chainIcons[chain],
		ContractAddress: contract,
	}
}

var (
	suiSUI         = newToken("sui", "SUI", "nep141:sui.omft.near", 9, "")
	suiUSDC        = newToken("sui", "USDC", "nep141:sui-c1b81ecaf27933252d31a963bc5e9458f13c18ce.omft.near", 6, "0xdba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f900e7::usdc::USDC")
	ethereumETH    = newToken("eth", "ETH", "nep141:eth.omft.near", 18, "")
	ethereumUSDC   = newToken("eth", "USDC", "nep141:eth-0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48.omft.near", 6, "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")
	ethereumUSDT   = newToken("eth", "USDT", "nep141:eth-0xdac17f958d2ee523a2206206994597c13d831ec7.omft.near", 6, "0xdac17f958d2ee523a2206206994597c13d831ec7")
	ethereumWBTC   = newToken("eth", "WBTC", "nep141:eth-0x2260fac5e5542a773aa44fbcfedf7c193bc2c599.omft.near", 8, "0x2260fac5e5542a773aa44fbcfedf7c193bc2c599")
	ethereumDAI    = newToken("eth", "DAI", "nep141:eth-0x6b175474e89094c44da98b954eedeac495271d0f.omft.near", 18, "0x6b175474e89094c44da98b954eedeac495271d0f")
	ethereumAAVE   = newToken("eth", "AAVE", "nep141:eth-0x7fc66500c84a76ad7e9c93437bfc5ac33e2ddae9.omft.near", 18, "0x7fc66500c84a76ad7e9c93437bfc5ac33e2ddae9")
	ethereumUNI    = newToken("eth", "UNI", "nep141:eth-0x1f9840a85d5af5bf1d1762f925bdaddc4201f984.omft.near", 18, "0x1f9840a85d5af5bf1d1762f925bdaddc4201f984")
	ethereumLINK   = newToken("eth", "LINK", "nep141:eth-0x514910771af9ca656af840dff83e8264ecf986ca.omft.near", 18, "0x514910771af9ca656af840dff83e8264ecf986ca")
	ethereumSHIB   = newToken("eth", "SHIB", "nep141:eth-0x95ad61b0a150d79219dcf64e1e6cc01f0b64c4ce.omft.near", 18, "0x95ad61b0a150d79219dcf64e1e6cc01f0b64c4ce")
	ethereumPEPE   = newToken("eth", "PEPE", "nep141:eth-0x6982508145454ce325ddbe47a25d4ec3d2311933.omft.near", 18, "0x6982508145454ce325ddbe47a25d4ec3d2311933")
	ethereumTURBO  = newToken("eth", "TURBO", "nep141:eth-0xa35923162c49cf95e6bf26623385eb431ad920d3.omft.near", 18, "0xa35923162c49cf95e6bf26623385eb431ad920d3")
	ethereumSAFE   = newToken("eth", "SAFE", "nep141:eth-0x5afe3855358e112b5647b952709e6165e1c1eeee.omft.near", 18, "0x5afe3855358e112b5647b952709e6165e1c1eeee")
	arbitrumETH    = newToken("arb", "ETH", "nep141:arb.omft.near", 18, "")
	arbitrumUSDC   = newToken("arb", "USDC", "nep141:arb-0xaf88d065e77c8cc2239327c5edb3a432268e5831.omft.near", 6, "0xaf88d065e77c8cc2239327c5edb3a432268e5831")
	arbitrumUSDT   = newToken("arb", "USDT", "nep141:arb-0xfd086bc7cd5c481dcc9c85ebe478a1c0b69fcbb9.omft.near", 6, "0xfd086bc7cd5c481dcc9c85ebe478a1c0b69fcbb9")
	arbitrumARB    = newToken("arb", "ARB", "nep141:arb-0x912ce59144191c1204e64559fe8253a0e49e6548.omft.near", 18, "0x912ce59144191c1204e64559fe8253a0e49e6548")
	arbitrumGMX    = newToken("arb", "GMX", "nep141:arb-0xfc5a1a6eb076a2c7ad06ed22c90d7e710e35ad0a.omft.near", 18, "0xfc5a1a6eb076a2c7ad06ed22c90d7e710e35ad0a")
	baseETH        = newToken("base", "ETH", "nep141:base.omft.near", 18, "")
	baseUSDC       = newToken("base", "USDC", "nep141:base-0x833589fcd6edb6e08f4c7c32d4f71b54bda02913.omft.near", 6, "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913")
	baseCbBTC      = newToken("base", "cbBTC", "nep141:base-0xcbb7c0000ab88b473b1f5afd9ef808440eed33bf.omft.near", 8, "0xcbb7c0000ab88b473b1f5afd9ef808440eed33bf")
	baseBRETT      = newToken("base", "BRETT", "nep141:base-0x532f27101965dd16442e59d40670faf5ebb142e4.omft.near", 18, "0x532f27101965dd16442e59d40670faf5ebb142e4")
	optimismETH    = newToken("op", "ETH", "nep245:v2_1.omni.hot.tg:10_11111111111111111111", 18, "")
	optimismUSDC   = newToken("op", "USDC", "nep245:v2_1.omni.hot.tg:10_A2ewyUyDp6qsue1jqZsGypkCxRJ", 6, "0x0b2c639c533813f4aa9d7837caf62653d097ff85")
	optimismUSDT   = newToken("op", "USDT", "nep245:v2_1.omni.hot.tg:10_359RPSJVdTxwTJT9TyGssr2rFoWo", 6, "0x94b008aa00579c1307b0ef2c499ad98a8ce58e58")
	optimismOP     = newToken("op", "OP", "nep245:v2_1.omni.hot.tg:10_vLAiSt9KfUGKpw5cD3vsSyNYBo7", 18, "0x4200000000000000000000000000000000000042")
	solanaSOL      = newToken("sol", "SOL", "nep141:sol.omft.near", 9, "")
	solanaUSDC     = newToken("sol", "USDC", "nep141:sol-5ce3bf3a31af18be40ba30f721101b4341690186.omft.near", 6, "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	solanaUSDT     = newToken("sol", "USDT", "nep141:sol-c800a4bd850783ccb82c2b2c7e84175443606352.omft.near", 6, "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB")
	solanaTRUMP    = newToken("sol", "TRUMP", "nep141:sol-c58e6539c2f2e097c251f8edf11f9c03e581f8d4.omft.near", 6, "6p6xgHyF7AeE6TZkSmFsko444wqoP15icUSqi2jfGiPN")
	solanaWIF      = newToken("sol", "$WIF", "nep141:sol-b9c68f94ec8fd160137af8cdfe5e61cd68e2afba.omft.near", 6, "EKpQGSJtjMFqKZ9KQanSqYXRcF8fBopzLHYxdM65zcjm")
	solanaMELANIA  = newToken("sol", "MELANIA", "nep141:sol-d600e625449a4d9380eaf5e3265e54c90d34e260.omft.near", 6, "FUAfBo2jgks6gB4Z4LfZkqSZgzNucisEHqnNebaRxM1P")
	bitcoinBTC     = newToken("btc", "BTC", "nep141:btc.omft.near", 8, "")
	polygonPOL     = newToken("pol", "POL", "nep245:v2_1.omni.hot.tg:137_11111111111111111111", 18, "")
	polygonUSDC    = newToken("pol", "USDC", "nep245:v2_1.omni.hot.tg:137_qiStmoQJDQPTebaPjgx5VBxZv6L", 6, "0x3c499c542cef5e3811e1192ce70d8cc03d5c3359")
	polygonUSDT    = newToken("pol", "USDT", "nep245:v2_1.omni.hot.tg:137_3hpYoaLtt8MP1Z2GH1U473DMRKgr", 6, "0xc2132d05d31c914a87c6611c10748aeb04b58e8f")
	avalancheAVAX  = newToken("avax", "AVAX", "nep245:v2_1.omni.hot.tg:43114_11111111111111111111", 18, "")
	avalancheUSDC  = newToken("avax", "USDC", "nep245:v2_1.omni.hot.tg:43114_3atVJH3r5c4GqiSYmg9fECvjc47o", 6, "0xb97ef9ef8734c71904d8002f8b6bc66dd9c48a6e")
	avalancheUSDT  = newToken("avax", "USDT", "nep245:v2_1.omni.hot.tg:43114_372BeH7ENZieCaabwkbWkBiTTgXp", 6, "0x9702230a8ea53601f5cd2dc00fdbc13d4df4a8c7")
	bscBNB         = newToken("bsc", "BNB", "nep245:v2_1.omni.hot.tg:56_11111111111111111111", 18, "")
	bscUSDC        = newToken("bsc", "USDC", "nep245:v2_1.omni.hot.tg:56_2w93GqMcEmQFDru84j3HZZWt557r", 18, "0x8ac76a51cc950d9822d68b83fe1ad97b32cd580d")
	bscUSDT        = newToken("bsc", "USDT", "nep245:v2_1.omni.hot.tg:56_2CMMyVTGZkeyNZTSvS5sarzfir6g", 18, "0x55d398326f99059ff775485246999027b3197955")
	tonTON         = newToken("ton", "TON", "nep245:v2_1.omni.hot.tg:1117_", 9, "")
	tonUSDT        = newToken("ton", "USDT", "nep245:v2_1.omni.hot.tg:1117_3tsdfyziyc7EJbP2aULWSKU4toBaAcN4FdTgfm5W1mC4ouR", 6, "EQCxE6mUtQJKFnGfaROTKOt1lZbDiiX1kCixRv7Nw2Id_sDs")
	tronTRX        = newToken("tron", "TRX", "nep141:tron.omft.near", 6, "")
	tronUSDT       = newToken("tron", "USDT", "nep141:tron-d28a265909efecdcee7c5028585214ea0b96f015.omft.near", 6, "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t")
	cardanoADA     = newToken("cardano", "ADA", "nep141:cardano.omft.near", 6, "")
	rippleXRP      = newToken("xrp", "XRP", "nep141:xrp.omft.near", 6, "")
	dogecoinDOGE   = newToken("doge", "DOGE", "nep141:doge.omft.near", 8, "")
	litecoinLTC    = newToken("ltc", "LTC", "nep141:ltc.omft.near", 8, "")
	bitcoinCashBCH = newToken("bch", "BCH", "nep141:bch.omft.near", 8, "")
	aptosAPT       = newToken("aptos", "APT", "nep141:aptos.omft.near", 8, "")
	starknetSTRK   = newToken("starknet", "STRK", "nep141:starknet.omft.near", 18, "")
	berachainBERA  = newToken("bera", "BERA", "nep141:bera.omft.near", 18, "")
	zcashZEC       = newToken("zec", "ZEC", "nep141:zec.omft.near", 8, "")
	nearNEAR       = newToken("near", "wNEAR", "nep141:wrap.near", 24, "wrap.near")
	nearUSDC       = newToken("near", "USDC", "nep141:17208628f84f5d6ad33f0da3bbbeb27ffcb398eac501a31bd6ad2011e36133a1", 6, "17208628f84f5d6ad33f0da3bbbeb27ffcb398eac501a31bd6ad2011e36133a1")
	nearUSDT       = newToken("near", "USDT", "nep141:usdt.tether-token.near", 6, "usdt.tether-token.near")
)

var defaultCatalog = New([]Chain{
	{ID: "sui", Name: "Sui", Icon: chainIcons["sui"], Tokens: []Token{suiSUI, suiUSDC}},
	{ID: "eth", Name: "Ethereum", Icon: chainIcons["eth"], Tokens: []Token{ethereumETH, ethereumUSDC, ethereumUSDT, ethereumWBTC, ethereumDAI, ethereumAAVE, ethereumUNI, ethereumLINK, ethereumSHIB, ethereumPEPE, ethereumTURBO, ethereumSAFE}},
	{ID: "arb", Name: "Arbitrum", Icon: chainIcons["arb"], Tokens: []Token{arbitrumETH, arbitrumUSDC, arbitrumUSDT, arbitrumARB, arbitrumGMX}},
	{ID: "base", Name: "Base", Icon: chainIcons["base"], Tokens: []Token{baseETH, baseUSDC, baseCbBTC, baseBRETT}},
	{ID: "op", Name: "Optimism", Icon: chainIcons["op"], Tokens: []Token{optimismETH, optimismUSDC, optimismUSDT, optimismOP}},
	{ID: "sol", Name: "Solana", Icon: chainIcons["sol"], Tokens: []Token{solanaSOL, solanaUSDC, solanaUSDT, solanaTRUMP, solanaWIF, solanaMELANIA}},
	{ID: "btc", Name: "Bitcoin", Icon: chainIcons["btc"], Tokens: []Token{bitcoinBTC}},
	{ID: "pol", Name: "Polygon", Icon: chainIcons["pol"], Tokens: []Token{polygonPOL, polygonUSDC, polygonUSDT}},
	{ID: "avax", Name: "Avalanche", Icon: chainIcons["avax"], Tokens: []Token{avalancheAVAX, avalancheUSDC, avalancheUSDT}},
	{ID: "bsc", Name: "BNB Chain", Icon: chainIcons["bsc"], Tokens: []Token{bscBNB, bscUSDC, bscUSDT}},
	{ID: "ton", Name: "TON", Icon: chainIcons["ton"], Tokens: []Token{tonTON, tonUSDT}},
	{ID: "tron", Name: "Tron", Icon: chainIcons["tron"], Tokens: []Token{tronTRX, tronUSDT}},
	{ID: "near", Name: "NEAR", Icon: chainIcons["near"], Tokens: []Token{nearNEAR, nearUSDC, nearUSDT}},
	{ID: "cardano", Name: "Cardano", Icon: chainIcons["cardano"], Tokens: []Token{cardanoADA}},
	{ID: "xrp", Name: "XRP Ledger", Icon: chainIcons["xrp"], Tokens: []Token{rippleXRP}},
	{ID: "doge", Name: "Dogecoin", Icon: chainIcons["doge"], Tokens: []Token{dogecoinDOGE}},
	{ID: "ltc", Name: "Litecoin", Icon: chainIcons["ltc"], Tokens: []Token{litecoinLTC}},
	{ID: "bch", Name: "Bitcoin Cash", Icon: chainIcons["bch"], Tokens: []Token{bitcoinCashBCH}},
	{ID: "aptos", Name: "Aptos", Icon: chainIcons["aptos"], Tokens: []Token{aptosAPT}},
	{ID: "starknet", Name: "Starknet", Icon: chainIcons["starknet"], Tokens: []Token{starknetSTRK}},
	{ID: "bera", Name: "Berachain", Icon: chainIcons["bera"], Tokens: []Token{berachainBERA}},
	{ID: "zec", Name: "Zcash", Icon: chainIcons["zec"], Tokens: []Token{zcashZEC}},
	{ID: "gnosis", Name: "Gnosis", Icon: chainIcons["gnosis"], Tokens: []Token{}},
	{ID: "monad", Name: "Monad", Icon: chainIcons["monad"], Tokens: []Token{}},
	{ID: "stellar", Name: "Stellar", Icon: chainIcons["stellar"], Tokens: []Token{}},
})
