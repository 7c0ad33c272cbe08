package ethereum

import (
	"github.com/AlexZinkM/chainkit/internal/logging"
)

var testStrategy = New(logging.Discard())

const (
	abandonPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	// m/44'/60'/0'/0/0 and /1 of abandonPhrase
	abandonKey      = "0x1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727"
	abandonAddress  = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"
	abandonAddress1 = "0x6Fac4D18c912343BF86fa7049364Dd4E424Ab9C0"

	// EIP-155 example transaction
	eip155Key      = "0x4646464646464646464646464646464646464646464646464646464646464646"
	eip155Address  = "0x9d8A62f656a8d1615C1294fd71e9CFb3E4855A4F"
	eip155To       = "0x3535353535353535353535353535353535353535"
	eip155Unsigned = "0xec098504a817c800825208943535353535353535353535353535353535353535880de0b6b3a764000080018080"
	eip155Hash     = "daf5a779ae972f972197303d7b574746c7ef83eadac0f2791ad23db92e4c8e53"
	eip155Signed   = "0xf86c098504a817c800825208943535353535353535353535353535353535353535880de0b6b3a764000080" +
		"25a028ef61340bd939bc2195fe537567866003e1a15d3c71ff63e1590620aa636276a067cbe9d8997f761aecb703304b3800ccf555c9f3dc64214b297fb1966a3b6d83"
	eip155Signature = "0x28ef61340bd939bc2195fe537567866003e1a15d3c71ff63e1590620aa636276" +
		"67cbe9d8997f761aecb703304b3800ccf555c9f3dc64214b297fb1966a3b6d831b"

	// pre-EIP-155 form of the same transfer, signed without a chain id
	homesteadUnsigned = "0xe9098504a817c800825208943535353535353535353535353535353535353535880de0b6b3a764000080"
	homesteadSigned   = "0xf86c098504a817c800825208943535353535353535353535353535353535353535880de0b6b3a764000080" +
		"1ba08383adc8b8ae116f918fb44ca7ff9dfd8012596a5c130c6246a2cc717ba41cdaa053ddfacf5bd4aa7e46d1575acf52636ea659b91f29e2fb91c75567a279738f38"
	homesteadSignature = "0x8383adc8b8ae116f918fb44ca7ff9dfd8012596a5c130c6246a2cc717ba41cda" +
		"53ddfacf5bd4aa7e46d1575acf52636ea659b91f29e2fb91c75567a279738f381b"

	// 0.25 ether from abandonAddress to eip155To, chain 1, nonce 4, 20 gwei, slot 0 of usdcContract warmed
	accessListUnsigned = "0x01f86701048504a817c8008275309435353535353535353535353535353535353535358803782dace9d9000080" +
		"f838f794a0b86991c6218b36c1d19d4a2e9eb0ce3606eb48e1a00000000000000000000000000000000000000000000000000000000000000000808080"
	accessListPayload = "0x01f86401048504a817c8008275309435353535353535353535353535353535353535358803782dace9d9000080" +
		"f838f794a0b86991c6218b36c1d19d4a2e9eb0ce3606eb48e1a00000000000000000000000000000000000000000000000000000000000000000"
	accessListSigned = "0x01f8a701048504a817c8008275309435353535353535353535353535353535353535358803782dace9d9000080" +
		"f838f794a0b86991c6218b36c1d19d4a2e9eb0ce3606eb48e1a0000000000000000000000000000000000000000000000000000000000000000001" +
		"a0cbdee7071b188b189c65a9220b72d156601605fab887875282043a25907d0a80a03c783d22d770a8f1eb483a0cd9553ce6f029c038a0ede2a772c15b72b2bd468b"
	accessListSignature = "0xcbdee7071b188b189c65a9220b72d156601605fab887875282043a25907d0a80" +
		"3c783d22d770a8f1eb483a0cd9553ce6f029c038a0ede2a772c15b72b2bd468b1c"

	// 0.5 ether from abandonAddress to eip155To, chain 1, nonce 7, 1 gwei tip, 30 gwei cap
	sendUnsigned = "0x02f30107843b9aca008506fc23ac008252089435353535353535353535353535353535353535358806f05b59d3b2000080c0808080"
	sendPayload  = "0x02f00107843b9aca008506fc23ac008252089435353535353535353535353535353535353535358806f05b59d3b2000080c0"
	sendSigned   = "0x02f8730107843b9aca008506fc23ac008252089435353535353535353535353535353535353535358806f05b59d3b2000080c001" +
		"a0a5ccb5348fa774248ce0b9ee1a9cbb60dc58f5e2d010cb45714d9e079f0adba6a016470a2912281290742dfab3d58494534b3fa7f6af91f90e47bbab7bb05f1aeb"
	sendSignature = "0xa5ccb5348fa774248ce0b9ee1a9cbb60dc58f5e2d010cb45714d9e079f0adba6" +
		"16470a2912281290742dfab3d58494534b3fa7f6af91f90e47bbab7bb05f1aeb1c"

	// 2.5 USDC to abandonAddress1 on chain 137, nonce 3
	usdcContract = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	erc20Data    = "0xa9059cbb0000000000000000000000006fac4d18c912343bf86fa7049364dd4e424ab9c0" +
		"00000000000000000000000000000000000000000000000000000000002625a0"

	// personal_sign by abandonKey
	personalMessage      = "hello chainkit"
	personalSignature    = "0x1af5b8afb4e7ab246450b360ce9bc7717573945a70974aed3e4fcf68f3e831de7a270334b771f2b95698d49a2532db723b6c20330f39b9c1120ab34d42505e541c"
	personalHexSignature = "0x245e1b3084958123682bc15fb9a9346f05f9652b700ce12570e621cfc61b0e5a766c4eb1abc918d5a2c1bf9ebee76c88152c1bccb86610eb54ca8fb22295ecb41b"
)

// erc20Data spliced into its EIP-1559 envelope
var erc20Unsigned = "0x02f8728189038477359400850ba43b7400830186a094a0b86991c6218b36c1d19d4a2e9eb0ce3606eb4880b844" +
	erc20Data[2:] + "c0808080"
